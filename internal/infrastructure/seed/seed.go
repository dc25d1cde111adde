// Package seed holds the demo dataset the service boots with. The data
// mirrors the consumer app's initial state: one registered scooter, two
// past maintenance episodes, the vendor bid catalog and the Seoul partner
// stores.
package seed

import "patoz_consumer/internal/domain/entities"

func Devices() []entities.Device {
	return []entities.Device{
		{
			ID:             "1",
			Brand:          "PATOZ",
			ModelName:      "EZ-BIKE S1",
			SerialNumber:   "ST12345678",
			Color:          "Midnight Navy",
			RegisteredYear: 2024,
			ImageURI:       "https://images.unsplash.com/photo-1544191696-102dbdaeeaa0?auto=format&fit=crop&w=900&q=80",
		},
	}
}

func History() []entities.HistoryItem {
	return []entities.HistoryItem{
		{
			ID:           "2",
			DeviceID:     "1",
			Title:        "모터 점검",
			Center:       "PATOZ Service Busan",
			ReceivedDate: "2025-04-02",
			Status:       "접수 완료",
		},
		{
			ID:            "1",
			DeviceID:      "1",
			Title:         "필터 교체",
			Center:        "PATOZ Service Seoul",
			ReceivedDate:  "2025-01-19",
			CompletedDate: "2025-01-22",
			Status:        "수령 완료",
		},
	}
}

func Estimates() []entities.EstimateDetail {
	return []entities.EstimateDetail{
		{
			ID:               "est-1",
			VendorName:       "PATOZ 강남 파트너센터",
			ExpectedCost:     "₩180,000",
			ExpectedDuration: "당일 5시간",
			Rating:           4.8,
			IsNew:            true,
			RepairItems:      []string{"후륜 브레이크 패드 교체", "브레이크 오일 점검", "휠 정렬 보정"},
			EngineerName:     "홍길동 기사",
		},
		{
			ID:               "est-2",
			VendorName:       "스피드 모빌리티 수리소",
			ExpectedCost:     "₩165,000",
			ExpectedDuration: "1일",
			Rating:           4.6,
			RepairItems:      []string{"후륜 브레이크 패드 교체", "모터 하우징 진동 점검"},
		},
		{
			ID:               "est-3",
			VendorName:       "프리미엄 이바이크 케어",
			ExpectedCost:     "₩210,000",
			ExpectedDuration: "당일 3시간",
			Rating:           4.9,
			IsNew:            true,
			RepairItems:      []string{"후륜 브레이크 패드 교체", "디스크 로터 연마", "구동계 정밀 세척"},
		},
	}
}

func Stores() []entities.Store {
	return []entities.Store{
		{
			ID:             "store-1",
			Name:           "PATOZ 서울 강북점",
			Latitude:       37.5794,
			Longitude:      126.977,
			DistanceKm:     2.1,
			Phone:          "02-1234-1111",
			SupportsSales:  true,
			SupportsRepair: true,
		},
		{
			ID:             "store-2",
			Name:           "PATOZ 강남 서비스센터",
			Latitude:       37.5008,
			Longitude:      127.0369,
			DistanceKm:     5.8,
			Phone:          "02-5678-2222",
			SupportsRepair: true,
		},
		{
			ID:            "store-3",
			Name:          "PATOZ 한강 판매 라운지",
			Latitude:      37.5283,
			Longitude:     126.9324,
			DistanceKm:    4.5,
			Phone:         "02-9876-3333",
			SupportsSales: true,
		},
		{
			ID:             "store-4",
			Name:           "PATOZ 송파 프리미엄센터",
			Latitude:       37.5147,
			Longitude:      127.1057,
			DistanceKm:     8.2,
			Phone:          "02-7611-4455",
			SupportsSales:  true,
			SupportsRepair: true,
		},
		{
			ID:             "store-5",
			Name:           "PATOZ 마포 리페어 허브",
			Latitude:       37.5489,
			Longitude:      126.9052,
			DistanceKm:     6.4,
			Phone:          "02-7755-9900",
			SupportsRepair: true,
		},
	}
}

// DefaultRegion is the Seoul viewport the store-finder map opens with.
func DefaultRegion() entities.Region {
	return entities.Region{
		Latitude:       37.5665,
		Longitude:      126.978,
		LatitudeDelta:  0.11,
		LongitudeDelta: 0.14,
	}
}
