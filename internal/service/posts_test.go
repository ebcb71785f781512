package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"techblog/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	admin := model.Identity{UserID: 1, Role: model.RoleAdmin}

	tests := []struct {
		name    string
		req     CreatePostRequest
		setup   func(ms *MockPostStorage)
		wantErr error
	}{
		{
			name:    "not admin",
			req:     CreatePostRequest{Actor: model.Identity{UserID: 2, Role: model.RoleUser}, Title: "t", Category: "go", Content: "c"},
			setup:   func(*MockPostStorage) {},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "validation error",
			req:     CreatePostRequest{Actor: admin, Title: "  ", Category: "go", Content: "c"},
			setup:   func(*MockPostStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "storage error",
			req:  CreatePostRequest{Actor: admin, Title: "t", Category: "go", Content: "c"},
			setup: func(ms *MockPostStorage) {
				ms.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(model.Post{}, errors.New("db fail"))
			},
			wantErr: ErrStorageFailure,
		},
		{
			name: "success",
			req:  CreatePostRequest{Actor: admin, Title: " Hello ", Category: "go", Content: "body"},
			setup: func(ms *MockPostStorage) {
				ms.EXPECT().
					CreatePost(gomock.Any(), model.Post{AuthorID: 1, Title: "Hello", Category: "go", Content: "body", CreatedAt: now, UpdatedAt: now}).
					DoAndReturn(func(_ context.Context, p model.Post) (model.Post, error) {
						p.ID = 5
						return p, nil
					})
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ms := NewMockPostStorage(ctrl)
			tt.setup(ms)

			svc := NewPostService(&passTx{}, ms, nil)
			svc.now = fixedClock(now)

			got, err := svc.CreatePost(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(5), got.ID)
			require.Equal(t, "Hello", got.Title)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	admin := model.Identity{UserID: 1, Role: model.RoleAdmin}

	tests := []struct {
		name    string
		actor   model.Identity
		setup   func(ms *MockPostStorage, inv *MockDisplayInvalidator)
		wantErr error
	}{
		{
			name:    "not admin",
			actor:   model.Identity{UserID: 1, Role: model.RoleUser},
			setup:   func(*MockPostStorage, *MockDisplayInvalidator) {},
			wantErr: ErrUnauthorized,
		},
		{
			name:  "missing",
			actor: admin,
			setup: func(ms *MockPostStorage, _ *MockDisplayInvalidator) {
				ms.EXPECT().DeletePost(gomock.Any(), int64(5)).Return(ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "deleted",
			actor: admin,
			setup: func(ms *MockPostStorage, inv *MockDisplayInvalidator) {
				ms.EXPECT().DeletePost(gomock.Any(), int64(5)).Return(nil)
				inv.EXPECT().
					InvalidateDisplay(gomock.Any(), model.DisplayChanged{PostID: 5, Reason: model.ReasonPostDeleted, At: now}).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ms := NewMockPostStorage(ctrl)
			inv := NewMockDisplayInvalidator(ctrl)
			tt.setup(ms, inv)

			svc := NewPostService(&passTx{}, ms, inv)
			svc.now = fixedClock(now)

			err := svc.DeletePost(context.Background(), tt.actor, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
