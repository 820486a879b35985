// Package docs registers the OpenAPI document served at /docs/doc.json with swag.
// Keep it in step with the @Router annotations in controllers/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Loads every collection on first visit, or again with refresh=1",
                "produces": ["text/html"],
                "tags": ["Admin"],
                "summary": "Admin page",
                "parameters": [
                    {"type": "string", "description": "Reload every collection", "name": "refresh", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/{entity}": {
            "post": {
                "description": "Create a record in add mode or update the selected record in edit mode",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Admin"],
                "summary": "Submit entity form",
                "parameters": [
                    {"type": "string", "description": "stores, products or prices", "name": "entity", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/{entity}/cancel": {
            "post": {
                "tags": ["Admin"],
                "summary": "Cancel edit",
                "parameters": [
                    {"type": "string", "description": "stores, products or prices", "name": "entity", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/{entity}/{id}/edit": {
            "get": {
                "tags": ["Admin"],
                "summary": "Edit record",
                "parameters": [
                    {"type": "string", "description": "stores, products or prices", "name": "entity", "in": "path", "required": true},
                    {"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        },
        "/{entity}/{id}/delete": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Admin"],
                "summary": "Delete prompt",
                "parameters": [
                    {"type": "string", "description": "stores, products or prices", "name": "entity", "in": "path", "required": true},
                    {"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "description": "Deletes only when the form carries confirm=yes",
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["Admin"],
                "summary": "Delete record",
                "parameters": [
                    {"type": "string", "description": "stores, products or prices", "name": "entity", "in": "path", "required": true},
                    {"type": "integer", "description": "Record ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "yes to confirm", "name": "confirm", "in": "formData"}
                ],
                "responses": {"303": {"description": "See Other"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Shopping Helper Admin",
	Description:      "Server-rendered admin for stores, products and prices of the shopping helper backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
