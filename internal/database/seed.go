package database

import (
	"danawa-backend/internal/models"

	"github.com/shopspring/decimal"
)

func imageURL(s string) *string { return &s }

func seedPortfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			ID:          1,
			Title:       "그래픽카드 고장 수리",
			Description: "오버클럭으로 인한 그래픽카드 손상 복구 및 팬 교체 작업",
			Category:    "하드웨어 수리",
			Details:     "고객님께서 게임 중 갑자기 화면이 깨지고 PC가 재부팅되는 현상으로 방문하셨습니다.\n\n진단 결과, 그래픽카드의 오버클럭 설정으로 인한 VRM 회로 손상과 쿨링 팬 고장이 확인되었습니다. 손상된 부품을 교체하고 정상 클럭으로 재설정 후 충분한 스트레스 테스트를 진행했습니다.\n\n수리 후에는 최적의 온도와 성능을 위한 쿨링 솔루션도 제안해 드렸습니다.",
			ImageURL:    imageURL("https://images.unsplash.com/photo-1591488320449-011701bb6704?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=2070&q=80"),
			Date:        "2023.06.15",
		},
		{
			ID:          2,
			Title:       "랜섬웨어 제거 및 데이터 복구",
			Description: "악성 랜섬웨어 제거 및 중요 파일 복구 작업",
			Category:    "소프트웨어 문제",
			Details:     "소규모 회사에서 갑자기 모든 파일이 암호화되고 몸값을 요구하는 화면이 나타나는 랜섬웨어 감염 사례입니다.\n\n즉시 네트워크에서 분리하고 악성코드 분석을 진행했습니다. 최신 복구 도구를 활용해 랜섬웨어를 제거하고, 백업되지 않은 중요 파일들을 가능한 범위 내에서 복구했습니다.\n\n이후 보안 시스템 강화와 정기적인 백업 솔루션을 구축하여 추가 피해를 방지했습니다.",
			ImageURL:    imageURL("https://images.unsplash.com/photo-1544197150-b99a580bb7a8?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=2070&q=80"),
			Date:        "2023.05.23",
		},
		{
			ID:          3,
			Title:       "사무실 PC 10대 정기 점검",
			Description: "중소기업 사무실 컴퓨터 정기 유지보수 및 성능 최적화",
			Category:    "기업 서비스",
			Details:     "10인 규모의 디자인 회사와 정기 유지보수 계약을 체결하여 매월 정기 점검을 진행한 사례입니다.\n\n모든 워크스테이션의 하드웨어 상태를 확인하고, 디스크 조각 모음, 임시 파일 정리, 드라이버 업데이트 등의 최적화 작업을 수행했습니다.\n\n특히 그래픽 작업이 많은 환경에 맞춰 메모리 및 그래픽카드 상태를 집중적으로 관리하여 작업 효율을 크게 향상시켰습니다.",
			ImageURL:    imageURL("https://images.unsplash.com/photo-1588702547919-26089e690ecc?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=2070&q=80"),
			Date:        "2023.07.05",
		},
	}
}

func seedServices() []ServiceEntry {
	return []ServiceEntry{
		{
			ID:          1,
			Title:       "하드웨어 수리",
			Description: "메인보드, 그래픽 카드, 메모리 등 PC 부품의 고장 진단 및 수리 서비스",
			BasePrice:   decimal.NewFromInt(50000),
			Category:    "hardware",
			Features:    []string{"부품별 정밀 진단", "솔루션 제안", "데이터 보존", "오류 해결"},
			Icon:        "Hardware",
		},
		{
			ID:          2,
			Title:       "운영체제 및 소프트웨어",
			Description: "윈도우 설치, 최적화, 바이러스 제거, 소프트웨어 문제 해결",
			BasePrice:   decimal.NewFromInt(40000),
			Category:    "software",
			Features:    []string{"윈도우 설치", "드라이버 업데이트", "최적화", "백업 및 복구"},
			Icon:        "Software",
		},
		{
			ID:          3,
			Title:       "데이터 복구",
			Description: "하드 디스크, SSD, USB 등에서의 데이터 복구 및 백업 서비스",
			BasePrice:   decimal.NewFromInt(70000),
			Category:    "data",
			Features:    []string{"긴급 복구", "파일 복원", "안전한 백업", "저장 장치 복구"},
			Icon:        "DataRecovery",
		},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{ID: 1, Name: "김민준", Date: "2023.05.12", Rating: 5, Service: "긴급 출장 수리",
			Comment: "갑자기 컴퓨터가 켜지지 않아 당황했는데, 전화 후 1시간 만에 방문해주셔서 신속하게 해결해주셨어요. 친절한 설명과 함께 문제 원인을 자세히 알려주셔서 좋았습니다."},
		{ID: 2, Name: "이서연", Date: "2023.04.27", Rating: 5, Service: "노트북 화면 수리",
			Comment: "노트북 화면이 깨져서 방문했는데, 예상보다 저렴한 가격에 빠르게 수리해주셨어요. 다른 곳에서는 교체만 가능하다고 했는데 여기서는 수리로 해결해주셔서 비용도 절약했습니다."},
		{ID: 3, Name: "박지훈", Date: "2023.06.02", Rating: 4, Service: "소프트웨어 문제 해결",
			Comment: "갑자기 블루스크린이 자주 떠서 문의드렸는데, 빠르게 원인을 찾아주시고 해결해주셨어요. 추가로 컴퓨터 성능 최적화까지 해주셔서 전보다 훨씬 빨라졌습니다."},
		{ID: 4, Name: "최수아", Date: "2023.03.15", Rating: 5, Service: "데이터 복구",
			Comment: "하드디스크가 고장나서 중요한 자료가 날아갈 뻔했는데, 데이터 복구 서비스로 거의 모든 파일을 살려주셨어요. 정말 감사합니다. 앞으로도 컴퓨터 문제가 생기면 무조건 여기로 올 것 같아요."},
		{ID: 5, Name: "정도윤", Date: "2023.06.20", Rating: 4, Service: "PC 조립",
			Comment: "게이밍 PC 조립을 의뢰했는데, 제 예산에 맞춰 최적의 부품을 추천해주시고 깔끔하게 조립해주셨어요. 케이블 정리도 정말 깔끔하고, 사용법도 자세히 알려주셔서 만족스럽습니다."},
		{ID: 6, Name: "한미래", Date: "2023.05.05", Rating: 5, Service: "네트워크 문제 해결",
			Comment: "사무실 네트워크 문제로 업무가 마비될 뻔했는데, 긴급 출장으로 신속하게 해결해주셨어요. 문제의 원인도 찾아서 앞으로 같은 문제가 발생하지 않도록 조치해주셨습니다. 매우 전문적이고 친절한 서비스에 감사드립니다."},
		{ID: 7, Name: "송현우", Date: "2023.07.08", Rating: 3, Service: "PC 업그레이드",
			Comment: "컴퓨터 업그레이드를 했는데, 처음 예상보다 비용이 조금 더 들었어요. 하지만 작업 퀄리티는 좋았고 설명도 자세히 해주셔서 크게 불만은 없습니다. 다음에는 미리 더 상세한 견적을 받아보고 진행할 것 같아요."},
		{ID: 8, Name: "임지민", Date: "2023.04.10", Rating: 5, Service: "노트북 점검 및 청소",
			Comment: "노트북이 너무 뜨겁고 소리가 심해서 방문했는데, 내부 청소와 쿨링 패드 교체로 문제를 완벽하게 해결해주셨어요. 먼지가 엄청 쌓여있었는데 이제 소리도 안 나고 훨씬 시원해졌습니다. 친절한 서비스 감사합니다!"},
		{ID: 9, Name: "오준서", Date: "2023.06.30", Rating: 5, Service: "컴퓨터 렌탈",
			Comment: "회사 행사용으로 노트북 10대를 대여했는데, 모든 장비가 완벽하게 세팅되어 있어서 따로 설정할 필요가 없었어요. 행사 중간에 기술적인 문제가 있었는데 즉시 지원도 와주셔서 행사를 성공적으로 마칠 수 있었습니다. 다음 행사에도 이용할 예정입니다."},
	}
}
