package handler

import (
	"net/http"
	"testing"

	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"
	mockUsecase "cafeteria/internal/mocks/usecase"
	"cafeteria/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	handler     *UserHandler
	userAdminUC *mockUsecase.MockUserAdminUsecase
	authUC      *mockUsecase.MockAuthUsecase
	admin       *entity.User
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	userAdminUC := mockUsecase.NewMockUserAdminUsecase(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)

	admin, err := entity.NewUser("u1@mail.com", "hashed", "Admin", entity.Roles{entity.RoleUserAdmin})
	require.NoError(t, err)

	return userHandlerFixtures{
		handler: NewUserHandler(UserHandlerParams{
			UserAdminUC: userAdminUC,
			AuthUC:      authUC,
			Logger:      newDiscardLogger(),
		}),
		userAdminUC: userAdminUC,
		authUC:      authUC,
		admin:       admin,
	}
}

func (f userHandlerFixtures) expectActor() {
	f.authUC.EXPECT().GetProfile(mock.Anything, f.admin.ID).Return(f.admin, nil)
}

func (f userHandlerFixtures) put(id uuid.UUID, ifMatch string) *testRequest {
	req := &testRequest{
		method: http.MethodPut,
		route:  "/api/admin/user/:id",
		target: "/api/admin/user/" + id.String(),
		body:   `{"fullName":"Jane Smith"}`,
		userID: f.admin.ID,
		roles:  f.admin.Roles,
	}
	if ifMatch != "" {
		req.headers = map[string]string{headerIfMatch: ifMatch}
	}

	return req
}

func TestUserHandler_CreateUser(t *testing.T) {
	fx := createTestUserHandler(t)
	fx.expectActor()
	created := newTestUser(t, entity.RoleSupplier)
	fx.userAdminUC.EXPECT().CreateUser(mock.Anything, usecase.CreateUserInput{
		Username:   "jane@example.com",
		Password:   "Password1",
		RePassword: "Password1",
		FullName:   "Jane Doe",
		Roles:      []string{"SUPPLIER"},
		CreatedBy:  "u1@mail.com",
	}).Return(created, nil)

	rec := serve(fx.handler.CreateUser, testRequest{
		method: http.MethodPost,
		route:  "/api/admin/user",
		target: "/api/admin/user",
		body:   `{"username":"jane@example.com","password":"Password1","rePassword":"Password1","fullName":"Jane Doe","authorities":["SUPPLIER"]}`,
		userID: fx.admin.ID,
		roles:  fx.admin.Roles,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `"0"`, rec.Header().Get(headerETag))
}

func TestUserHandler_CreateUser_UnknownRole(t *testing.T) {
	fx := createTestUserHandler(t)

	rec := serve(fx.handler.CreateUser, testRequest{
		method: http.MethodPost,
		route:  "/api/admin/user",
		target: "/api/admin/user",
		body:   `{"username":"jane@example.com","password":"Password1","rePassword":"Password1","fullName":"Jane Doe","authorities":["ROOT"]}`,
		userID: fx.admin.ID,
		roles:  fx.admin.Roles,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestUserHandler_GetUser_SetsETag(t *testing.T) {
	fx := createTestUserHandler(t)
	user := newTestUser(t, entity.RoleCustomer)
	user.Version = 4
	fx.userAdminUC.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil)

	rec := serve(fx.handler.GetUser, testRequest{
		method: http.MethodGet,
		route:  "/api/admin/user/:id",
		target: "/api/admin/user/" + user.ID.String(),
		userID: fx.admin.ID,
		roles:  fx.admin.Roles,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"4"`, rec.Header().Get(headerETag))
	assert.Equal(t, int64(4), decodeData[UserResponse](t, rec).Version)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("missing If-Match", func(t *testing.T) {
		fx := createTestUserHandler(t)

		rec := serve(fx.handler.UpdateUser, *fx.put(uuid.New(), ""))

		assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
		assert.Equal(t, "PRECONDITION_REQUIRED", errorCode(t, rec))
	})

	t.Run("non numeric If-Match", func(t *testing.T) {
		fx := createTestUserHandler(t)

		rec := serve(fx.handler.UpdateUser, *fx.put(uuid.New(), `"abc"`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stale version", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.expectActor()
		id := uuid.New()
		fx.userAdminUC.EXPECT().UpdateUser(mock.Anything, id, int64(2), mock.Anything).
			Return(nil, domainerrors.ErrVersionConflict)

		rec := serve(fx.handler.UpdateUser, *fx.put(id, `"2"`))

		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})

	t.Run("matching version", func(t *testing.T) {
		fx := createTestUserHandler(t)
		fx.expectActor()
		user := newTestUser(t, entity.RoleCustomer)
		user.Version = 3
		fullName := "Jane Smith"
		fx.userAdminUC.EXPECT().UpdateUser(mock.Anything, user.ID, int64(2), usecase.UpdateUserInput{
			FullName:   &fullName,
			ModifiedBy: "u1@mail.com",
		}).Return(user, nil)

		rec := serve(fx.handler.UpdateUser, *fx.put(user.ID, `W/"2"`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `"3"`, rec.Header().Get(headerETag))
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	fx := createTestUserHandler(t)
	fx.expectActor()
	user := newTestUser(t, entity.RoleCustomer)
	user.AnonymizeAndDisable()
	fx.userAdminUC.EXPECT().DeleteUser(mock.Anything, user.ID, int64(0), "u1@mail.com").Return(user, nil)

	rec := serve(fx.handler.DeleteUser, testRequest{
		method:  http.MethodDelete,
		route:   "/api/admin/user/:id",
		target:  "/api/admin/user/" + user.ID.String(),
		headers: map[string]string{headerIfMatch: `"0"`},
		userID:  fx.admin.ID,
		roles:   fx.admin.Roles,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeData[UserResponse](t, rec).Enabled)
}

func TestUserHandler_SearchUsers_Paged(t *testing.T) {
	fx := createTestUserHandler(t)
	users := []*entity.User{newTestUser(t, entity.RoleCustomer)}
	fx.userAdminUC.EXPECT().SearchUsers(mock.Anything, usecase.UserSearchQuery{Username: "jane"}, entity.PageRequest{Page: 1, Size: 1}).
		Return(entity.NewPage(users, entity.PageRequest{Page: 1, Size: 1}, 3), nil)

	rec := serve(fx.handler.SearchUsers, testRequest{
		method: http.MethodPost,
		route:  "/api/admin/user/search",
		target: "/api/admin/user/search?page=1&size=1",
		body:   `{"username":"jane"}`,
		userID: fx.admin.ID,
		roles:  fx.admin.Roles,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeData[map[string]any](t, rec)
	assert.EqualValues(t, 3, page["totalElements"])
	assert.EqualValues(t, 3, page["totalPages"])
	assert.Equal(t, true, page["hasNext"])
	assert.Equal(t, true, page["hasPrevious"])
	assert.Equal(t, false, page["first"])
	assert.Len(t, page["content"], 1)
}

func TestUserHandler_CheckUsername(t *testing.T) {
	fx := createTestUserHandler(t)
	fx.userAdminUC.EXPECT().UsernameExists(mock.Anything, "jane@example.com").Return(true, nil)

	rec := serve(fx.handler.CheckUsername, testRequest{
		method: http.MethodGet,
		route:  "/api/admin/user/check-username",
		target: "/api/admin/user/check-username?username=jane@example.com",
		userID: fx.admin.ID,
		roles:  fx.admin.Roles,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]bool{"exists": true}, decodeData[map[string]bool](t, rec))
}
