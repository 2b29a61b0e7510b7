package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

type memoryHistory struct {
	mu    sync.Mutex
	items []store.Submission
}

func (h *memoryHistory) AddSubmission(_ context.Context, submission store.Submission) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, submission)

	return int64(len(h.items)), nil
}

func newStub(t *testing.T, status int, received chan<- contact.Form) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/contact" {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)

			return
		}

		var form contact.Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		if received != nil {
			received <- form
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestClientSubmit(t *testing.T) {
	received := make(chan contact.Form, 1)
	server := newStub(t, http.StatusCreated, received)

	client, errClient := contact.NewClient(server.Client(), server.URL+"/")
	require.NoError(t, errClient)
	require.Equal(t, server.URL+"/api/contact", client.Endpoint())

	form := contact.Form{Name: "A", Email: "a@b.com", Message: "hi"}
	require.NoError(t, client.Submit(t.Context(), form))
	require.Equal(t, form, <-received)
}

func TestClientSubmitRejected(t *testing.T) {
	server := newStub(t, http.StatusInternalServerError, nil)

	client, errClient := contact.NewClient(server.Client(), server.URL)
	require.NoError(t, errClient)

	err := client.Submit(t.Context(), contact.Form{Name: "A"})
	require.ErrorIs(t, err, contact.ErrSubmit)
	require.ErrorIs(t, err, contact.ErrStatus)

	var statusErr contact.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestClientSubmitTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, errClient := contact.NewClient(nil, url)
	require.NoError(t, errClient)

	err := client.Submit(t.Context(), contact.Form{Name: "A"})
	require.ErrorIs(t, err, contact.ErrSubmit)
	require.NotErrorIs(t, err, contact.ErrStatus)
}

func TestNewClientInvalidBaseURL(t *testing.T) {
	for _, value := range []string{"", "localhost:8080", "ftp://host", "http://"} {
		_, err := contact.NewClient(nil, value)
		require.ErrorIs(t, err, contact.ErrBaseURL, value)
	}
}

func TestSubmitterRecordsHistory(t *testing.T) {
	okServer := newStub(t, http.StatusOK, nil)
	badServer := newStub(t, http.StatusBadGateway, nil)

	history := &memoryHistory{}

	okClient, _ := contact.NewClient(okServer.Client(), okServer.URL)
	require.NoError(t, contact.NewSubmitter(okClient, history).Submit(t.Context(),
		contact.Form{Name: "A", Email: "a@b.com", Message: "hi"}))

	badClient, _ := contact.NewClient(badServer.Client(), badServer.URL)
	require.Error(t, contact.NewSubmitter(badClient, history).Submit(t.Context(),
		contact.Form{Name: "B", Email: "b@b.com", Message: "yo"}))

	require.Len(t, history.items, 2)
	require.Equal(t, contact.StatusSuccess, history.items[0].Status)
	require.Empty(t, history.items[0].Error)
	require.Equal(t, contact.StatusFailure, history.items[1].Status)
	require.Equal(t, http.StatusBadGateway, history.items[1].HTTPStatus)
	require.NotEmpty(t, history.items[1].Error)
	require.False(t, history.items[1].CreatedOn.IsZero())
}

func TestSubmitterSingleInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 2)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		entered <- struct{}{}
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, errClient := contact.NewClient(server.Client(), server.URL)
	require.NoError(t, errClient)

	submitter := contact.NewSubmitter(client, nil)

	firstResult := make(chan error, 1)
	go func() {
		firstResult <- submitter.Submit(context.Background(), contact.Form{Name: "first"})
	}()

	<-entered
	require.ErrorIs(t, submitter.Submit(t.Context(), contact.Form{Name: "second"}), contact.ErrInFlight)

	close(release)
	require.NoError(t, <-firstResult)
	require.Empty(t, entered)

	// The slot is free again once the first request completes.
	require.NoError(t, submitter.Submit(t.Context(), contact.Form{Name: "third"}))
	server.CloseClientConnections()
}

func TestFormEmpty(t *testing.T) {
	require.True(t, contact.Form{Name: " ", Message: "\n"}.Empty())
	require.False(t, contact.Form{Email: "a@b.com"}.Empty())
}

func TestFormValidate(t *testing.T) {
	valid := contact.Form{Name: "Jo", Email: "jo@example.com", Message: "hello"}
	require.NoError(t, valid.Validate())

	cases := []struct {
		form contact.Form
		want error
	}{
		{contact.Form{Email: "jo@example.com", Message: "hello"}, contact.ErrFieldRequired},
		{contact.Form{Name: "  ", Email: "jo@example.com", Message: "hello"}, contact.ErrFieldRequired},
		{contact.Form{Name: "Jo", Message: "hello"}, contact.ErrFieldRequired},
		{contact.Form{Name: "Jo", Email: "not an address", Message: "hello"}, contact.ErrEmailInvalid},
		{contact.Form{Name: "Jo", Email: "jo@example.com", Message: "\n"}, contact.ErrFieldRequired},
	}

	for _, tc := range cases {
		require.ErrorIs(t, tc.form.Validate(), tc.want, "%+v", tc.form)
	}
}
