// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLabel(t *testing.T) {
	tests := []struct {
		name     string
		settings ServerSettings
		want     string
	}{
		{
			name:     "email format not required, email auth on",
			settings: ServerSettings{RequireEmailFormatUsernames: false, EmailAuthEnabled: true},
			want:     "Email or Username",
		},
		{
			name:     "email format not required, email auth off",
			settings: ServerSettings{RequireEmailFormatUsernames: false, EmailAuthEnabled: false},
			want:     "Username",
		},
		{
			name:     "email format required, email auth on",
			settings: ServerSettings{RequireEmailFormatUsernames: true, EmailAuthEnabled: true},
			want:     "Email",
		},
		{
			name:     "email format required, email auth off",
			settings: ServerSettings{RequireEmailFormatUsernames: true, EmailAuthEnabled: false},
			want:     "Email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLabel(tt.settings))
		})
	}
}

func TestGetServerSettings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/server_settings", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"require_email_format_usernames": true, "email_auth_enabled": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	settings, err := client.GetServerSettings(context.Background())

	require.NoError(t, err)
	assert.True(t, settings.RequireEmailFormatUsernames)
	assert.False(t, settings.EmailAuthEnabled)
}

func TestGetServerSettings_MissingFieldsDefaultFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	settings, err := client.GetServerSettings(context.Background())

	require.NoError(t, err)
	assert.False(t, settings.RequireEmailFormatUsernames)
	assert.False(t, settings.EmailAuthEnabled)
}

func TestGetServerSettings_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down immediately so the dial fails

	client := NewClient(server.URL)
	_, err := client.GetServerSettings(context.Background())

	require.Error(t, err)
	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeConnection, clientErr.Type)
}

func TestGetLoginID_PromptsWithResolvedLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"require_email_format_usernames": false, "email_auth_enabled": true}`))
	}))
	defer server.Close()

	var gotPrompt string
	prompt := func(p string) (string, error) {
		gotPrompt = p
		return "me@example.com", nil
	}

	loginID, err := GetLoginID(context.Background(), NewClient(server.URL), prompt)

	require.NoError(t, err)
	assert.Equal(t, "me@example.com", loginID)
	assert.Equal(t, "Email or Username: ", gotPrompt)
}

func TestFetchAPIKey_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/fetch_api_key", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "me@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		w.Write([]byte(`{"result": "success", "msg": "", "api_key": "abc123", "email": "me@example.com"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	key, err := client.FetchAPIKey(context.Background(), "me@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestFetchAPIKey_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"result": "error", "msg": "Your username or password is incorrect"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchAPIKey(context.Background(), "me@example.com", "wrong")

	require.ErrorIs(t, err, ErrAuthFailed)
}

func TestFetchAPIKey_ErrorResultWith200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": "error", "msg": "account deactivated"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchAPIKey(context.Background(), "me@example.com", "hunter2")

	require.ErrorIs(t, err, ErrAuthFailed)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://chat.example.com/")
	assert.Equal(t, "https://chat.example.com", client.ServerURL())
}
