package crud_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-helper-admin/client"
	"shopping-helper-admin/crud"
)

type item struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Score *float64 `json:"score"`
}

type itemForm struct {
	Name  string
	Score string
}

type itemPayload struct {
	Name  string   `json:"name"`
	Score *float64 `json:"score"`
}

var itemEntity = crud.Entity[item, itemForm]{
	Name:   "item",
	Plural: "items",
	Path:   "/items",
	ID:     func(i item) uint { return i.ID },
	ToForm: func(i item) itemForm {
		f := itemForm{Name: i.Name}
		if i.Score != nil {
			f.Score = strconv.FormatFloat(*i.Score, 'f', -1, 64)
		}
		return f
	},
	Ready: func(f itemForm) bool { return !crud.Blank(f.Name) },
	Payload: func(f itemForm) (any, error) {
		if f.Name == "invalid" {
			return nil, &crud.ValidationError{Field: "name", Message: "Name is invalid"}
		}
		return itemPayload{Name: f.Name, Score: crud.OptionalFloat(f.Score)}, nil
	},
}

type call struct {
	method  string
	path    string
	id      uint
	payload any
}

// fakeBackend keeps records in memory and records every call.
type fakeBackend struct {
	mu      sync.Mutex
	items   []item
	calls   []call
	fail    map[string]error
	nextID  uint
	blockOn string
	release chan struct{}
	entered chan struct{}
}

func newFakeBackend(items ...item) *fakeBackend {
	return &fakeBackend{items: items, fail: map[string]error{}, nextID: uint(len(items))}
}

func (f *fakeBackend) record(c call) error {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	err := f.fail[c.method]
	block := f.blockOn == c.method
	f.mu.Unlock()

	if block {
		f.entered <- struct{}{}
		<-f.release
	}
	return err
}

func (f *fakeBackend) List(_ context.Context, path string, out any) error {
	if err := f.record(call{method: http.MethodGet, path: path}); err != nil {
		return err
	}
	f.mu.Lock()
	data, _ := json.Marshal(f.items)
	f.mu.Unlock()
	return json.Unmarshal(data, out)
}

func (f *fakeBackend) Create(_ context.Context, path string, payload any) error {
	if err := f.record(call{method: http.MethodPost, path: path, payload: payload}); err != nil {
		return err
	}
	p := payload.(itemPayload)
	f.mu.Lock()
	f.nextID++
	f.items = append(f.items, item{ID: f.nextID, Name: p.Name, Score: p.Score})
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) Update(_ context.Context, path string, id uint, payload any) error {
	if err := f.record(call{method: http.MethodPut, path: path, id: id, payload: payload}); err != nil {
		return err
	}
	p := payload.(itemPayload)
	f.mu.Lock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = p.Name
			f.items[i].Score = p.Score
		}
	}
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) Delete(_ context.Context, path string, id uint) error {
	if err := f.record(call{method: http.MethodDelete, path: path, id: id}); err != nil {
		return err
	}
	f.mu.Lock()
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) writes() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.method != http.MethodGet {
			out = append(out, c)
		}
	}
	return out
}

type countingRefresher struct {
	mu    sync.Mutex
	count int
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.mu.Lock()
	r.count++
	r.mu.Unlock()
	return nil
}

func yes(string) bool { return true }

func newController(b *fakeBackend) (*crud.Controller[item, itemForm], *crud.Banner) {
	banner := &crud.Banner{}
	return crud.NewController(itemEntity, b, banner, nil), banner
}

func statusErr(code int) error {
	return &client.StatusError{Method: "X", URL: "/items", StatusCode: code}
}

func TestList_LoadsCollection(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"}, item{ID: 2, Name: "two"})
	ctrl, banner := newController(backend)

	require.NoError(t, ctrl.List(context.Background()))

	st := ctrl.State()
	assert.Len(t, st.Items, 2)
	assert.True(t, st.Loaded)
	assert.False(t, st.Loading)
	assert.Empty(t, banner.Message())
}

func TestList_FailureKeepsPreviousCollection(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"})
	ctrl, banner := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))

	backend.fail[http.MethodGet] = statusErr(http.StatusInternalServerError)
	err := ctrl.List(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "Failed to fetch items", banner.Message())
	st := ctrl.State()
	assert.Len(t, st.Items, 1)
	assert.False(t, st.Loading)
}

func TestList_EmptyCollectionIsNotNil(t *testing.T) {
	ctrl, _ := newController(newFakeBackend())

	require.NoError(t, ctrl.List(context.Background()))

	st := ctrl.State()
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
	assert.True(t, st.Loaded)
}

func TestSubmit_CreateResetsForm(t *testing.T) {
	backend := newFakeBackend()
	ctrl, banner := newController(backend)

	require.NoError(t, ctrl.SetForm(itemForm{Name: "new", Score: "abc"}))
	require.NoError(t, ctrl.Submit(context.Background()))

	writes := backend.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, http.MethodPost, writes[0].method)
	// unparseable optional number is sent as null
	assert.Equal(t, itemPayload{Name: "new", Score: nil}, writes[0].payload)

	st := ctrl.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "new", st.Items[0].Name)
	assert.Equal(t, itemForm{}, st.Form)
	assert.False(t, st.Editing())
	assert.False(t, st.Submitting)
	assert.Empty(t, banner.Message())
}

func TestSubmit_EditUpdatesByID(t *testing.T) {
	backend := newFakeBackend(item{ID: 4, Name: "old"})
	ctrl, _ := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))

	require.NoError(t, ctrl.Select(4))
	require.NoError(t, ctrl.SetForm(itemForm{Name: "renamed"}))
	require.NoError(t, ctrl.Submit(context.Background()))

	writes := backend.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, http.MethodPut, writes[0].method)
	assert.Equal(t, uint(4), writes[0].id)

	st := ctrl.State()
	assert.Equal(t, "renamed", st.Items[0].Name)
	assert.False(t, st.Editing())
}

func TestSubmit_FailureKeepsFormAndMode(t *testing.T) {
	backend := newFakeBackend(item{ID: 4, Name: "old"})
	ctrl, banner := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))
	require.NoError(t, ctrl.Select(4))
	require.NoError(t, ctrl.SetForm(itemForm{Name: "renamed"}))

	backend.fail[http.MethodPut] = statusErr(http.StatusBadRequest)
	err := ctrl.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "Failed to update item", banner.Message())
	st := ctrl.State()
	assert.Equal(t, itemForm{Name: "renamed"}, st.Form)
	id, editing := crud.EditingID[item](st.Mode)
	assert.True(t, editing)
	assert.Equal(t, uint(4), id)
	assert.False(t, st.Submitting)
}

func TestSubmit_CreateFailureMessage(t *testing.T) {
	backend := newFakeBackend()
	backend.fail[http.MethodPost] = statusErr(http.StatusUnprocessableEntity)
	ctrl, banner := newController(backend)

	require.NoError(t, ctrl.SetForm(itemForm{Name: "x"}))
	assert.Error(t, ctrl.Submit(context.Background()))
	assert.Equal(t, "Failed to create item", banner.Message())
	assert.Equal(t, itemForm{Name: "x"}, ctrl.State().Form)
}

func TestSubmit_RequiredFieldsMissing(t *testing.T) {
	backend := newFakeBackend()
	ctrl, banner := newController(backend)

	require.NoError(t, ctrl.SetForm(itemForm{Name: "   "}))
	err := ctrl.Submit(context.Background())

	assert.True(t, crud.IsValidation(err))
	assert.NotEmpty(t, banner.Message())
	assert.Empty(t, backend.writes())
}

func TestSubmit_ValidationAbortsBeforeRequest(t *testing.T) {
	backend := newFakeBackend()
	ctrl, banner := newController(backend)

	require.NoError(t, ctrl.SetForm(itemForm{Name: "invalid"}))
	err := ctrl.Submit(context.Background())

	assert.True(t, crud.IsValidation(err))
	assert.Equal(t, "Name is invalid", banner.Message())
	assert.Empty(t, backend.writes())
	assert.Equal(t, itemForm{Name: "invalid"}, ctrl.State().Form)
}

func TestSubmit_ClearsBannerOnNewAttempt(t *testing.T) {
	backend := newFakeBackend()
	ctrl, banner := newController(backend)
	banner.Set("old failure")

	require.NoError(t, ctrl.SetForm(itemForm{Name: "ok"}))
	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Empty(t, banner.Message())
}

func TestSubmitForm_BusyKeepsInFlightInput(t *testing.T) {
	backend := newFakeBackend()
	backend.blockOn = http.MethodPost
	backend.entered = make(chan struct{})
	backend.release = make(chan struct{})
	ctrl, _ := newController(backend)

	done := make(chan error, 1)
	go func() { done <- ctrl.SubmitForm(context.Background(), itemForm{Name: "first"}) }()
	<-backend.entered

	assert.ErrorIs(t, ctrl.SubmitForm(context.Background(), itemForm{Name: "second"}), crud.ErrBusy)
	assert.Equal(t, itemForm{Name: "first"}, ctrl.State().Form)

	close(backend.release)
	require.NoError(t, <-done)
	writes := backend.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, itemPayload{Name: "first"}, writes[0].payload)
	assert.Equal(t, itemForm{}, ctrl.State().Form)
}

func TestSubmit_BusyWhileInFlight(t *testing.T) {
	backend := newFakeBackend()
	backend.blockOn = http.MethodPost
	backend.entered = make(chan struct{})
	backend.release = make(chan struct{})
	ctrl, _ := newController(backend)
	require.NoError(t, ctrl.SetForm(itemForm{Name: "slow"}))

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background()) }()
	<-backend.entered

	assert.True(t, ctrl.State().Submitting)
	assert.ErrorIs(t, ctrl.Submit(context.Background()), crud.ErrBusy)
	assert.ErrorIs(t, ctrl.SetForm(itemForm{Name: "other"}), crud.ErrBusy)
	assert.ErrorIs(t, ctrl.Cancel(), crud.ErrBusy)

	close(backend.release)
	assert.NoError(t, <-done)
	assert.False(t, ctrl.State().Submitting)
	assert.Len(t, backend.writes(), 1)
}

func TestSubmit_SelectionDuringFlightSurvives(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"})
	ctrl, _ := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))

	backend.blockOn = http.MethodPost
	backend.entered = make(chan struct{})
	backend.release = make(chan struct{})
	require.NoError(t, ctrl.SetForm(itemForm{Name: "two"}))

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background()) }()
	<-backend.entered
	require.NoError(t, ctrl.Select(1))
	close(backend.release)
	require.NoError(t, <-done)

	id, editing := crud.EditingID[item](ctrl.State().Mode)
	assert.True(t, editing)
	assert.Equal(t, uint(1), id)
	assert.Equal(t, "one", ctrl.State().Form.Name)
}

func TestSelect_CopiesRecordIntoForm(t *testing.T) {
	score := 7.5
	backend := newFakeBackend(item{ID: 3, Name: "three", Score: &score})
	ctrl, _ := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))

	require.NoError(t, ctrl.Select(3))

	st := ctrl.State()
	assert.Equal(t, itemForm{Name: "three", Score: "7.5"}, st.Form)
	editing, ok := st.Mode.(crud.Editing[item])
	require.True(t, ok)
	assert.Equal(t, uint(3), editing.ID)
	assert.Equal(t, "three", editing.Snapshot.Name)
}

func TestSelect_UnknownID(t *testing.T) {
	ctrl, _ := newController(newFakeBackend())
	assert.ErrorIs(t, ctrl.Select(99), crud.ErrNotFound)
	assert.False(t, ctrl.State().Editing())
}

func TestCancel_ReturnsToCreateWithoutRequest(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"})
	ctrl, _ := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))
	require.NoError(t, ctrl.Select(1))

	require.NoError(t, ctrl.Cancel())

	st := ctrl.State()
	assert.Equal(t, itemForm{}, st.Form)
	_, isCreating := st.Mode.(crud.Creating[item])
	assert.True(t, isCreating)
	assert.Empty(t, backend.writes())
}

func TestDelete_DeclinedIssuesNoRequest(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"})
	ctrl, _ := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))

	var prompt string
	err := ctrl.Delete(context.Background(), 1, crud.ConfirmFunc(func(p string) bool {
		prompt = p
		return false
	}))

	assert.ErrorIs(t, err, crud.ErrNotConfirmed)
	assert.Equal(t, "Are you sure you want to delete this item?", prompt)
	assert.Empty(t, backend.writes())
	assert.Len(t, ctrl.State().Items, 1)

	assert.ErrorIs(t, ctrl.Delete(context.Background(), 1, nil), crud.ErrNotConfirmed)
}

func TestDelete_RefreshesOwnAndDependents(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"}, item{ID: 2, Name: "two"})
	ctrl, _ := newController(backend)
	dep := &countingRefresher{}
	ctrl.RefreshAfterDelete(dep)
	require.NoError(t, ctrl.List(context.Background()))

	require.NoError(t, ctrl.Delete(context.Background(), 1, crud.ConfirmFunc(yes)))

	st := ctrl.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, uint(2), st.Items[0].ID)
	assert.Equal(t, 1, dep.count)
}

func TestDelete_FailureKeepsRecord(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"})
	ctrl, banner := newController(backend)
	dep := &countingRefresher{}
	ctrl.RefreshAfterDelete(dep)
	require.NoError(t, ctrl.List(context.Background()))

	backend.fail[http.MethodDelete] = statusErr(http.StatusInternalServerError)
	err := ctrl.Delete(context.Background(), 1, crud.ConfirmFunc(yes))

	assert.Error(t, err)
	assert.Equal(t, "Failed to delete item", banner.Message())
	assert.Len(t, ctrl.State().Items, 1)
	assert.Zero(t, dep.count)
}

func TestDelete_RecordBeingEditedResetsForm(t *testing.T) {
	backend := newFakeBackend(item{ID: 1, Name: "one"})
	ctrl, _ := newController(backend)
	require.NoError(t, ctrl.List(context.Background()))
	require.NoError(t, ctrl.Select(1))

	require.NoError(t, ctrl.Delete(context.Background(), 1, crud.ConfirmFunc(yes)))

	st := ctrl.State()
	assert.False(t, st.Editing())
	assert.Equal(t, itemForm{}, st.Form)
}
