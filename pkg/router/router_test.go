package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/router"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type greetRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type greetResponse struct {
	Greeting string `json:"greeting"`
}

type envelope struct {
	Code  int64           `json:"code"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *httptest.Server {
	r := router.New(testutil.MockContext())

	router.GET(r, "/greet", func(ctx context.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{Greeting: fmt.Sprintf("hello %s x%d", req.Name, req.Count)}, nil
	})

	router.POST(r, "/greet-back", func(ctx context.Context, req *greetRequest) (*greetResponse, error) {
		if req.Name == "" {
			return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
		}

		return &greetResponse{Greeting: "welcome back " + req.Name}, nil
	})

	server := httptest.NewServer(r.Handler())
	t.Cleanup(server.Close)
	return server
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func Test_Router_GET_BindsQuery(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/greet?name=world&count=3")
	require.NoError(t, err)

	env := decodeEnvelope(t, resp)
	require.EqualValues(t, 0, env.Code)

	var data greetResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "hello world x3", data.Greeting)
}

func Test_Router_POST_BindsBody(t *testing.T) {
	server := newTestServer(t)

	body, err := json.Marshal(greetRequest{Name: "world"})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/greet-back", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	env := decodeEnvelope(t, resp)
	require.EqualValues(t, 0, env.Code)

	var data greetResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "welcome back world", data.Greeting)
}

func Test_Router_ErrorEnvelope(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/greet-back", "application/json", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)

	env := decodeEnvelope(t, resp)
	require.EqualValues(t, errorx.BadRequest, env.Code)
	require.Equal(t, "Not allow an empty name", env.Error)
}

func Test_Router_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/greet-back")
	require.NoError(t, err)

	env := decodeEnvelope(t, resp)
	require.EqualValues(t, errorx.BadRequest, env.Code)
	require.Equal(t, "Method is not allowed", env.Error)
}

func Test_Router_Middleware(t *testing.T) {
	r := router.New(testutil.MockContext())

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	})
	router.GET(branch, "/private", func(ctx context.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{}, nil
	})
	router.GET(r, "/public", func(ctx context.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{Greeting: "open"}, nil
	})

	server := httptest.NewServer(r.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/private")
	require.NoError(t, err)
	env := decodeEnvelope(t, resp)
	require.EqualValues(t, errorx.Unauthenticated, env.Code)

	// The branch middleware must not leak onto the parent router.
	resp, err = http.Get(server.URL + "/public")
	require.NoError(t, err)
	env = decodeEnvelope(t, resp)
	require.EqualValues(t, 0, env.Code)
}
