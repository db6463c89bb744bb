//go:build unit

package queries_test

import (
	"context"
	"testing"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/infra"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase/queries"
	"wishkeeper/tests/common/builder"
	queriesmock "wishkeeper/tests/mock/queries"
	usecasemock "wishkeeper/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemQueries_GetListItems(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	shopper := uuid.New()
	buyer := uuid.New()

	newMocks := func(t *testing.T) (*queriesmock.MockItemReadStore, *usecasemock.MockAccessService, queries.ItemQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockItemReadStore(ctrl)
		accessor := usecasemock.NewMockAccessService(ctrl)
		return store, accessor, queries.NewItemQueries(store, accessor)
	}

	t.Run("owner never sees purchase state of their own items", func(t *testing.T) {
		store, accessor, q := newMocks(t)

		view := builder.NewListItemsViewBuilder().
			WithOwner(owner).
			AddItem("Wool socks", &buyer).
			AddItem("Lego castle", nil).
			Build()
		listID := view.List.ID

		accessor.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), gomock.Any(), access.RoleViewer).
			Return(access.Granted(access.RoleAdmin), nil)
		store.EXPECT().ListWithItems(ctx, listID).Return(view, nil)

		got, err := q.GetListItems(ctx, access.Principal{UserID: owner}, listID)
		require.NoError(t, err)

		for _, item := range got.Items {
			assert.Nil(t, item.IsPurchased)
			assert.Nil(t, item.PurchasedBy)
			assert.Nil(t, item.PurchasedByName)
			assert.Nil(t, item.PurchasedAt)
		}
	})

	t.Run("shopper sees purchase state untouched", func(t *testing.T) {
		store, accessor, q := newMocks(t)

		view := builder.NewListItemsViewBuilder().
			WithOwner(owner).
			AddItem("Wool socks", &buyer).
			Build()
		listID := view.List.ID
		want := *view.Items[0]

		accessor.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), gomock.Any(), access.RoleViewer).
			Return(access.Granted(access.RoleViewer), nil)
		store.EXPECT().ListWithItems(ctx, listID).Return(view, nil)

		got, err := q.GetListItems(ctx, access.Principal{UserID: shopper}, listID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)

		if diff := cmp.Diff(&want, got.Items[0]); diff != "" {
			t.Errorf("item view mutated (-want +got):\n%s", diff)
		}
		require.NotNil(t, got.Items[0].PurchasedBy)
		assert.Equal(t, buyer, *got.Items[0].PurchasedBy)
	})

	t.Run("anonymous guest is not the owner and sees purchase state", func(t *testing.T) {
		store, accessor, q := newMocks(t)

		view := builder.NewListItemsViewBuilder().
			WithOwner(owner).
			AddItem("Wool socks", &buyer).
			Build()
		listID := view.List.ID

		accessor.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), gomock.Any(), access.RoleViewer).
			Return(access.Granted(access.RoleViewer), nil)
		store.EXPECT().ListWithItems(ctx, listID).Return(view, nil)

		got, err := q.GetListItems(ctx, access.Principal{GuestToken: "tok"}, listID)
		require.NoError(t, err)
		assert.NotNil(t, got.Items[0].IsPurchased)
	})

	t.Run("denied access masks as not found", func(t *testing.T) {
		_, accessor, q := newMocks(t)

		accessor.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), gomock.Any(), access.RoleViewer).
			Return(access.Denied(), nil)

		_, err := q.GetListItems(ctx, access.Principal{UserID: shopper}, uuid.New())
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("missing list masks as not found", func(t *testing.T) {
		store, accessor, q := newMocks(t)
		listID := uuid.New()

		accessor.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), gomock.Any(), access.RoleViewer).
			Return(access.Granted(access.RoleViewer), nil)
		store.EXPECT().ListWithItems(ctx, listID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "list not found", nil))

		_, err := q.GetListItems(ctx, access.Principal{UserID: shopper}, listID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestShareQueries_ListForResource(t *testing.T) {
	ctx := context.Background()
	resource := access.ResourceRef{Type: access.ResourceList, ID: uuid.New()}

	t.Run("admin lists shares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockShareReadStore(ctrl)
		accessor := usecasemock.NewMockAccessService(ctrl)
		q := queries.NewShareQueries(store, accessor)

		views := []*queries.ShareView{{ID: uuid.New(), Role: "viewer"}}
		accessor.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), resource, access.RoleAdmin).
			Return(access.Granted(access.RoleAdmin), nil)
		store.EXPECT().FindByResource(ctx, resource).Return(views, nil)

		got, err := q.ListForResource(ctx, access.Principal{UserID: uuid.New()}, resource)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("non-admin gets not found, not an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockShareReadStore(ctrl)
		accessor := usecasemock.NewMockAccessService(ctrl)
		q := queries.NewShareQueries(store, accessor)

		accessor.EXPECT().CheckAccess(gomock.Any(), gomock.Any(), resource, access.RoleAdmin).
			Return(access.Denied(), nil)

		_, err := q.ListForResource(ctx, access.Principal{UserID: uuid.New()}, resource)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
