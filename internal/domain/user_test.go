package domain

import (
	"testing"

	"github.com/learnquest-lab/backend/internal/model"
	"github.com/learnquest-lab/backend/internal/repository"
	"github.com/learnquest-lab/backend/pkg/authenticator"
	"github.com/learnquest-lab/backend/pkg/errorx"
	"github.com/learnquest-lab/backend/pkg/testutil"
	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_Register(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	tokenEngine := authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(ctx).Auth.AccessToken)
	userDomain := NewUserDomain(repository.NewUserRepository(), tokenEngine)

	resp, err := userDomain.Register(ctx, &model.RegisterRequest{Name: "newcomer"})
	require.NoError(t, err)
	require.Equal(t, "newcomer", resp.User.Name)
	require.NotEmpty(t, resp.AccessToken)

	// The returned token authenticates as the new user.
	info, err := tokenEngine.Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, info.ID)

	_, err = userDomain.Register(ctx, &model.RegisterRequest{Name: ""})
	require.Equal(t, errorx.New(errorx.BadRequest, "Not allow an empty name"), err)

	_, err = userDomain.Register(ctx, &model.RegisterRequest{Name: testutil.User1.Name})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "This name is already taken"), err)
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	tokenEngine := authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(ctx).Auth.AccessToken)
	userDomain := NewUserDomain(repository.NewUserRepository(), tokenEngine)

	resp, err := userDomain.GetMe(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID), &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.ID)
	require.Equal(t, testutil.User1.Name, resp.Name)
}
