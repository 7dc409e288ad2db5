package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/asif/shops-platform/internal/service"
	"github.com/asif/shops-platform/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]interface{}
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful signup",
			request: map[string]interface{}{
				"user_name": "newuser",
				"password":  "sup3r-secret!",
				"shopNames": []string{"bookhub", "furnihub", "beautyhub"},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					UserName string `json:"user_name"`
					Shops    []struct {
						ShopName string `json:"shop_name"`
					} `json:"shops"`
					PasswordHash string `json:"PasswordHash"`
				}
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "newuser", result.UserName)
				assert.Len(t, result.Shops, 3)
				// The secret never appears in responses
				assert.Empty(t, result.PasswordHash)
			},
		},
		{
			name: "missing user name",
			request: map[string]interface{}{
				"password":  "sup3r-secret!",
				"shopNames": []string{"shop-a", "shop-b", "shop-c"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "weak password without digit",
			request: map[string]interface{}{
				"user_name": "weakuser",
				"password":  "justletters!",
				"shopNames": []string{"shop-a", "shop-b", "shop-c"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "weak password without special character",
			request: map[string]interface{}{
				"user_name": "weakuser",
				"password":  "letters123",
				"shopNames": []string{"shop-a", "shop-b", "shop-c"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicates collapse below three shop names",
			request: map[string]interface{}{
				"user_name": "dupeuser",
				"password":  "sup3r-secret!",
				"shopNames": []string{"same-shop", " same-shop ", "same-shop", "other"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate user name",
			request: map[string]interface{}{
				"user_name": "existinguser",
				"password":  "sup3r-secret!",
				"shopNames": []string{"shop-x", "shop-y", "shop-z"},
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUserName("existinguser").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Username Unavailable!")
			},
		},
		{
			name: "shop name owned by someone else",
			request: map[string]interface{}{
				"user_name": "lateuser",
				"password":  "sup3r-secret!",
				"shopNames": []string{"claimed", "late-b", "late-c"},
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUserName("earlyuser").
					WithShopNames("claimed", "early-b", "early-c").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Shop name must be globally unique")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.URL("/auth/signup"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Signin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, rawPassword := testutil.NewUserBuilder().
		WithUserName("loginuser").
		WithPassword("c0rrect-horse!").
		Build(t, ts.DB.DB)

	t.Run("successful signin sets session cookie", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/auth/signin"), map[string]interface{}{
			"user_name":  "loginuser",
			"password":   rawPassword,
			"rememberMe": false,
		})
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Message string `json:"message"`
			Data    struct {
				UserName string `json:"userName"`
			} `json:"data"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Login successful!", result.Message)
		assert.Equal(t, "loginuser", result.Data.UserName)

		cookie := testutil.SessionCookie(resp, service.SessionCookieName)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, 1800, cookie.MaxAge)
	})

	t.Run("remember me extends cookie lifetime", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/auth/signin"), map[string]interface{}{
			"user_name":  "loginuser",
			"password":   rawPassword,
			"rememberMe": true,
		})
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		cookie := testutil.SessionCookie(resp, service.SessionCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, 604800, cookie.MaxAge)
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/auth/signin"), map[string]interface{}{
			"user_name": "nobody",
			"password":  "anyp4ssword!",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "User not found!")
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/auth/signin"), map[string]interface{}{
			"user_name": "loginuser",
			"password":  "wr0ng-password!",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Incorrect password!")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// No session needed; logout is idempotent
	resp := postJSON(t, ts.URL("/auth/logout"), map[string]interface{}{})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := testutil.SessionCookie(resp, service.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthHandler_Session(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, rawPassword := testutil.NewUserBuilder().
		WithUserName("sessionuser").
		WithShopNames("sess-a", "sess-b", "sess-c").
		WithPassword("c0rrect-horse!").
		Build(t, ts.DB.DB)

	signin := postJSON(t, ts.URL("/auth/signin"), map[string]interface{}{
		"user_name": "sessionuser",
		"password":  rawPassword,
	})
	defer signin.Body.Close()
	require.Equal(t, http.StatusOK, signin.StatusCode)

	cookie := testutil.SessionCookie(signin, service.SessionCookieName)
	require.NotNil(t, cookie)

	t.Run("valid cookie returns profile with shops", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL("/auth/session"), nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			UserName string `json:"user_name"`
			Shops    []struct {
				ShopName string `json:"shop_name"`
			} `json:"shops"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "sessionuser", result.UserName)
		assert.Len(t, result.Shops, 3)
	})

	t.Run("missing cookie is unauthenticated", func(t *testing.T) {
		resp, err := http.Get(ts.URL("/auth/session"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage cookie is unauthenticated", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL("/auth/session"), nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "not-a-token"})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
