package usecase

import (
	"context"
	"testing"

	"patoz_consumer/internal/domain/entities"
	mock_interfaces "patoz_consumer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testStores = []entities.Store{
	{ID: "store-1", Latitude: 37.5794, Longitude: 126.977, SupportsSales: true, SupportsRepair: true},
	{ID: "store-2", Latitude: 37.5008, Longitude: 127.0369, SupportsSales: false, SupportsRepair: true},
	{ID: "store-3", Latitude: 37.5283, Longitude: 126.9324, SupportsSales: true, SupportsRepair: false},
	{ID: "far", Latitude: 35.1796, Longitude: 129.0756, SupportsSales: true, SupportsRepair: true},
}

var testRegion = entities.Region{Latitude: 37.5665, Longitude: 126.978, LatitudeDelta: 0.11, LongitudeDelta: 0.14}

func TestStoreUseCase_List(t *testing.T) {
	cases := []struct {
		name   string
		filter StoreFilter
		want   []string
	}{
		{name: "no filter", filter: StoreFilter{}, want: []string{"store-1", "store-2", "store-3", "far"}},
		{name: "sales only", filter: StoreFilter{SalesOnly: true}, want: []string{"store-1", "store-3", "far"}},
		{name: "repair only", filter: StoreFilter{RepairOnly: true}, want: []string{"store-1", "store-2", "far"}},
		{name: "both", filter: StoreFilter{SalesOnly: true, RepairOnly: true}, want: []string{"store-1", "far"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIStoreRepository(ctrl)
			uc := NewStoreUseCase(repo)

			repo.EXPECT().List(gomock.Any()).Return(testStores, nil)

			got, err := uc.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d stores, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestStoreUseCase_ListInViewport(t *testing.T) {
	t.Run("uses default region when nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewStoreUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(testStores, nil)
		repo.EXPECT().DefaultRegion(gomock.Any()).Return(testRegion, nil)

		markers, err := uc.ListInViewport(context.Background(), nil, StoreFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, m := range markers {
			if m.Store.ID == "far" {
				t.Fatalf("out-of-viewport store leaked into markers")
			}
			if m.Position.LeftPercent < 8 || m.Position.LeftPercent > 92 {
				t.Fatalf("marker out of clamp range: %+v", m.Position)
			}
		}
		// store-2 sits below the region's southern edge and must be cut.
		if len(markers) != 2 {
			t.Fatalf("expected 2 markers, got %d", len(markers))
		}
		if markers[0].Store.ID != "store-1" || markers[1].Store.ID != "store-3" {
			t.Fatalf("unexpected marker set: %s, %s", markers[0].Store.ID, markers[1].Store.ID)
		}
	})

	t.Run("explicit region with filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewStoreUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(testStores, nil)

		region := testRegion
		markers, err := uc.ListInViewport(context.Background(), &region, StoreFilter{RepairOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(markers) != 1 {
			t.Fatalf("expected 1 repair store in viewport, got %d", len(markers))
		}
		if markers[0].Store.ID != "store-1" {
			t.Fatalf("expected store-1, got %s", markers[0].Store.ID)
		}
	})
}
