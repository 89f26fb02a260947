package services

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/sample"
)

var demoCreds = domain.Credentials{Email: sample.DemoEmail, Password: sample.DemoPassword}

func TestLogin_Live(t *testing.T) {
	var sent map[string]string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&sent)
		respond(http.StatusOK, `{"id":"u-42","email":"tenant@handygo.ae","firstName":"Sarah","lastName":"Johnson",
			"phoneNumber":"+971550000000","token":"jwt-abc","tenant":{"id":"t-9","userId":"u-42","name":"Sarah Johnson"}}`)(w, r)
	})
	svc := NewAuthService(f.api, f.keychain, f.repo)

	res, err := svc.Login(ctx(), demoCreds)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"email": sample.DemoEmail, "password": sample.DemoPassword}, sent)
	assert.Equal(t, "jwt-abc", res.Token)
	assert.Equal(t, "u-42", res.User.ID)
	assert.Equal(t, "+971550000000", res.User.Phone)
	require.NotNil(t, res.Tenant)
	assert.Equal(t, "t-9", res.Tenant.ID)

	token, err := f.keychain.Token(ctx())
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
}

func TestLogin_LiveWithoutTokenGetsSyntheticToken(t *testing.T) {
	f := newFixture(t, respond(http.StatusOK, `{"user":{"id":"u-7","email":"a@b.ae"}}`))

	res, err := NewAuthService(f.api, f.keychain, f.repo).Login(ctx(), domain.Credentials{Email: "a@b.ae", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "backend-u-7", res.Token)
	assert.Equal(t, domain.RoleTenant, res.User.Role)
	assert.Nil(t, res.Tenant)
}

func TestLogin_FallbackDemoAccount(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewAuthService(f.api, f.keychain, f.repo)

	res, err := svc.Login(ctx(), demoCreds)
	require.NoError(t, err)
	assert.Equal(t, sample.DemoToken, res.Token)
	assert.Equal(t, "tu1", res.User.ID)
	require.NotNil(t, res.Tenant)
	assert.Equal(t, "t1", res.Tenant.ID)

	sess, err := svc.CurrentSession(ctx())
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "Sarah Johnson", sess.User.FullName())
	require.NotNil(t, sess.Tenant)
	assert.Equal(t, "1204", sess.Tenant.Unit)
}

func TestLogin_FallbackRejectsOtherCredentials(t *testing.T) {
	f := newFixture(t, respond(http.StatusUnauthorized, `{"error":true,"message":"bad"}`))
	svc := NewAuthService(f.api, f.keychain, f.repo)

	res, err := svc.Login(ctx(), domain.Credentials{Email: sample.DemoEmail, Password: "nope"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))

	sess, err := svc.CurrentSession(ctx())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLogin_ValidationHappensBeforeNetwork(t *testing.T) {
	called := false
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := NewAuthService(f.api, f.keychain, f.repo).Login(ctx(), domain.Credentials{Email: "not-an-email"})
	assert.True(t, apperr.Is(err, apperr.CodeBadRequest))
	assert.False(t, called)
}

func TestLogout_ClearsSession(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewAuthService(f.api, f.keychain, f.repo)
	_, err := svc.Login(ctx(), demoCreds)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx()))

	sess, err := svc.CurrentSession(ctx())
	require.NoError(t, err)
	assert.Nil(t, sess)
	token, err := f.keychain.Token(ctx())
	require.NoError(t, err)
	assert.Empty(t, token)
}
