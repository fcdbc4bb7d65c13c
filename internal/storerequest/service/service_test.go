package storerequestservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/storerequest"
	storerequestdb "github.com/xw1nchester/hisba-backend/internal/storerequest/db"
	mockmetrics "github.com/xw1nchester/hisba-backend/internal/storerequest/service/mocks/metrics"
	mockstorerequestrepo "github.com/xw1nchester/hisba-backend/internal/storerequest/service/mocks/repo"
	mockstoreservice "github.com/xw1nchester/hisba-backend/internal/storerequest/service/mocks/store"
	mockuserservice "github.com/xw1nchester/hisba-backend/internal/storerequest/service/mocks/user"
	mocktransactor "github.com/xw1nchester/hisba-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	ErrUnexpected = errors.New("unexpected error")

	Pending = storerequest.Request{
		ID:        4,
		UserID:    6,
		StoreName: "Green Farm",
		Address:   "Main st. 1",
		Phone:     "+100",
		StoreType: store.TypeFarm,
		Status:    storerequest.StatusPending,
	}
)

type mocks struct {
	repo    *mockstorerequestrepo.MockRepository
	stores  *mockstoreservice.MockStoreService
	users   *mockuserservice.MockUserService
	metrics *mockmetrics.MockMetrics
	tx      *mocktransactor.MockManager
}

func newTestService(ctrl *gomock.Controller) (*service, mocks) {
	m := mocks{
		repo:    mockstorerequestrepo.NewMockRepository(ctrl),
		stores:  mockstoreservice.NewMockStoreService(ctrl),
		users:   mockuserservice.NewMockUserService(ctrl),
		metrics: mockmetrics.NewMockMetrics(ctrl),
		tx:      mocktransactor.NewMockManager(ctrl),
	}

	return New(m.repo, m.stores, m.users, m.metrics, m.tx, zap.NewNop()), m
}

func inTransaction(ctx context.Context, m mocks, expectations func()) {
	m.tx.EXPECT().
		WithinTransaction(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			expectations()
			return fn(ctx)
		})
}

func withStatus(status storerequest.Status) *storerequest.Request {
	r := Pending
	r.Status = status
	return &r
}

func TestCreate(t *testing.T) {
	input := storerequest.Request{StoreName: "Green Farm", Address: "Main st. 1", Phone: "+100", StoreType: store.TypeFarm}
	stored := input
	stored.UserID = 6

	tests := []struct {
		name          string
		mockBehavior  func(ctx context.Context, m mocks)
		expectedError error
	}{
		{
			name: "success",
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().Create(ctx, stored).Return(&Pending, nil)
			},
		},
		{
			name: "pending or approved request exists",
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().Create(ctx, stored).Return(nil, storerequestdb.ErrActiveRequestExists)
			},
			expectedError: ErrDuplicateRequest,
		},
		{
			name: "unexpected error",
			mockBehavior: func(ctx context.Context, m mocks) {
				m.repo.EXPECT().Create(ctx, stored).Return(nil, ErrUnexpected)
			},
			expectedError: ErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, m)

			created, err := svc.Create(ctx, 6, input)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, storerequest.StatusPending, created.Status)
		})
	}
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name           string
		mockBehavior   func(ctx context.Context, m mocks)
		expectedStatus storerequest.Status
		expectedError  error
	}{
		{
			name: "provisions store and seller flag",
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					gomock.InOrder(
						m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusPending), nil),
						m.stores.EXPECT().GetByUserID(ctx, 6).Return(nil, apperror.ErrNotFound),
						m.stores.EXPECT().Create(ctx, Pending.Store()).Return(&store.Store{ID: 10, UserID: 6}, nil),
						m.repo.EXPECT().SetStatus(ctx, 4, storerequest.StatusApproved, "").Return(withStatus(storerequest.StatusApproved), nil),
						m.users.EXPECT().SetSeller(ctx, 6, true).Return(nil),
					)
				})
				m.metrics.EXPECT().StoreRequestResolved("Approved")
			},
			expectedStatus: storerequest.StatusApproved,
		},
		{
			name: "requester already owns a store",
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusPending), nil)
					m.stores.EXPECT().GetByUserID(ctx, 6).Return(&store.Store{ID: 9, UserID: 6}, nil)
					m.repo.EXPECT().SetStatus(ctx, 4, storerequest.StatusDuplicate, "").Return(withStatus(storerequest.StatusDuplicate), nil)
				})
				m.metrics.EXPECT().StoreRequestResolved("Duplicate")
			},
			expectedStatus: storerequest.StatusDuplicate,
		},
		{
			name: "duplicate is idempotent",
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusDuplicate), nil)
				})
			},
			expectedStatus: storerequest.StatusDuplicate,
		},
		{
			name: "approved is idempotent",
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusApproved), nil)
				})
			},
			expectedStatus: storerequest.StatusApproved,
		},
		{
			name: "rejected request",
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusRejected), nil)
				})
			},
			expectedError: ErrNotPending,
		},
		{
			name: "unknown request",
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(nil, storerequestdb.ErrRequestNotFound)
				})
			},
			expectedError: ErrNoRequest,
		},
		{
			name: "seller flag failure rolls back",
			mockBehavior: func(ctx context.Context, m mocks) {
				inTransaction(ctx, m, func() {
					m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusPending), nil)
					m.stores.EXPECT().GetByUserID(ctx, 6).Return(nil, apperror.ErrNotFound)
					m.stores.EXPECT().Create(ctx, Pending.Store()).Return(&store.Store{ID: 10, UserID: 6}, nil)
					m.repo.EXPECT().SetStatus(ctx, 4, storerequest.StatusApproved, "").Return(withStatus(storerequest.StatusApproved), nil)
					m.users.EXPECT().SetSeller(ctx, 6, true).Return(ErrUnexpected)
				})
			},
			expectedError: ErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestService(ctrl)
			ctx := context.Background()
			tt.mockBehavior(ctx, m)

			resolved, err := svc.Approve(ctx, 4)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Nil(t, resolved)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedStatus, resolved.Status)
		})
	}
}

func TestReject(t *testing.T) {
	t.Run("pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)
		ctx := context.Background()

		rejected := withStatus(storerequest.StatusRejected)
		rejected.RejectReason = "incomplete address"

		inTransaction(ctx, m, func() {
			m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusPending), nil)
			m.repo.EXPECT().SetStatus(ctx, 4, storerequest.StatusRejected, "incomplete address").Return(rejected, nil)
		})
		m.metrics.EXPECT().StoreRequestResolved("Rejected")

		got, err := svc.Reject(ctx, 4, "incomplete address")
		require.NoError(t, err)
		require.Equal(t, "incomplete address", got.RejectReason)
	})

	t.Run("already approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestService(ctrl)
		ctx := context.Background()

		inTransaction(ctx, m, func() {
			m.repo.EXPECT().GetByIDForUpdate(ctx, 4).Return(withStatus(storerequest.StatusApproved), nil)
		})

		_, err := svc.Reject(ctx, 4, "late")
		require.ErrorIs(t, err, ErrNotPending)
	})
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestService(ctrl)
	ctx := context.Background()

	_, err := svc.GetStatus(ctx, access.Actor{UserID: 7}, 6)
	require.ErrorIs(t, err, apperror.ErrForbidden)

	m.repo.EXPECT().GetByUserID(ctx, 6).Return(&Pending, nil)

	status, err := svc.GetStatus(ctx, access.Actor{UserID: 6}, 6)
	require.NoError(t, err)
	require.Equal(t, storerequest.StatusPending, status)
}
