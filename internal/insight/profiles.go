// Package insight derives per-stakeholder impact/urgency reports from
// classified articles. Reports are computed on demand from stored
// classifications and trend history, never persisted themselves.
package insight

import "NewsPulse/internal/domain"

// ImpactWeights mix the four impact signals. Each profile's weights
// sum to 1 so the score stays in [0,1].
type ImpactWeights struct {
	Intensity float64 // |mean sentiment| / 2
	Volume    float64 // log-scaled article count
	Trend     float64 // normalized delta vs the prior period
	Relevance float64 // fraction of lexicon groups matched
}

// profiles tunes signal weighting per audience: investors react to
// momentum, media to volume, government to sustained trend shifts.
var profiles = map[domain.Stakeholder]ImpactWeights{
	domain.StakeholderCustomer:   {Intensity: 0.4, Volume: 0.3, Trend: 0.2, Relevance: 0.1},
	domain.StakeholderInvestor:   {Intensity: 0.35, Volume: 0.25, Trend: 0.35, Relevance: 0.05},
	domain.StakeholderGovernment: {Intensity: 0.3, Volume: 0.2, Trend: 0.4, Relevance: 0.1},
	domain.StakeholderMedia:      {Intensity: 0.25, Volume: 0.4, Trend: 0.25, Relevance: 0.1},
}

var defaultWeights = ImpactWeights{Intensity: 0.3, Volume: 0.2, Trend: 0.2, Relevance: 0.3}

func weightsFor(s domain.Stakeholder) ImpactWeights {
	if w, ok := profiles[s]; ok {
		return w
	}
	return defaultWeights
}

// actionRule produces response recommendations for one combination of
// signals. Rules are evaluated in order; every matching rule fires.
type actionRule struct {
	negative    bool // requires negative mean sentiment
	minImpact   domain.ImpactLevel
	minUrgency  domain.UrgencyLevel
	concernKeys []string // fires only when one of these concern groups was detected; empty = any
	actions     []string
}

var impactRank = map[domain.ImpactLevel]int{
	domain.ImpactVeryLow:  0,
	domain.ImpactLow:      1,
	domain.ImpactMedium:   2,
	domain.ImpactHigh:     3,
	domain.ImpactVeryHigh: 4,
}

var urgencyRank = map[domain.UrgencyLevel]int{
	domain.UrgencyLow:      0,
	domain.UrgencyMedium:   1,
	domain.UrgencyHigh:     2,
	domain.UrgencyCritical: 3,
}

func (r actionRule) matches(negative bool, impact domain.ImpactLevel, urgency domain.UrgencyLevel, concernKeys map[string]bool) bool {
	if r.negative && !negative {
		return false
	}
	if r.minImpact != "" && impactRank[impact] < impactRank[r.minImpact] {
		return false
	}
	if r.minUrgency != "" && urgencyRank[urgency] < urgencyRank[r.minUrgency] {
		return false
	}
	if len(r.concernKeys) > 0 {
		hit := false
		for _, key := range r.concernKeys {
			if concernKeys[key] {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// actionRules keys recommended responses by stakeholder. Concern keys
// reference the group keys of the stakeholder lexicons.
var actionRules = map[domain.Stakeholder][]actionRule{
	domain.StakeholderCustomer: {
		{negative: true, minUrgency: domain.UrgencyHigh,
			actions: []string{"고객 커뮤니케이션 채널을 통한 신속한 입장 발표", "고객 불만 대응 전담 조직 가동"}},
		{negative: true, concernKeys: []string{"issues", "product_quality"},
			actions: []string{"품질 이슈 원인 분석 및 개선 계획 공유"}},
		{negative: true, concernKeys: []string{"service"},
			actions: []string{"고객 서비스 응대 프로세스 점검"}},
		{minImpact: domain.ImpactHigh,
			actions: []string{"고객 여론 모니터링 주기 단축"}},
		{actions: []string{"고객 만족도 추이 정기 모니터링"}},
	},
	domain.StakeholderInvestor: {
		{negative: true, minUrgency: domain.UrgencyHigh,
			actions: []string{"IR 긴급 공시 및 투자자 설명 자료 준비", "주요 기관투자자 대상 개별 브리핑"}},
		{negative: true, concernKeys: []string{"financials", "risk"},
			actions: []string{"실적 하락 요인에 대한 명확한 설명 자료 작성"}},
		{negative: true, concernKeys: []string{"governance"},
			actions: []string{"지배구조 관련 공시 투명성 강화"}},
		{minImpact: domain.ImpactHigh,
			actions: []string{"IR 미팅 일정 확대"}},
		{actions: []string{"투자자 대상 정기 실적 커뮤니케이션 유지"}},
	},
	domain.StakeholderGovernment: {
		{negative: true, minUrgency: domain.UrgencyHigh,
			actions: []string{"규제 당국 대상 선제적 소명 자료 제출"}},
		{negative: true, concernKeys: []string{"sanction", "oversight"},
			actions: []string{"컴플라이언스 내부 점검 강화", "법무 검토 및 대응 시나리오 수립"}},
		{concernKeys: []string{"regulation"},
			actions: []string{"규제 동향 분석 및 대응 체계 정비"}},
		{actions: []string{"정책 동향 정기 모니터링"}},
	},
	domain.StakeholderMedia: {
		{negative: true, minUrgency: domain.UrgencyHigh,
			actions: []string{"공식 입장문 발표 및 보도 대응 체계 가동"}},
		{negative: true, concernKeys: []string{"crisis"},
			actions: []string{"위기 커뮤니케이션 프로토콜 실행"}},
		{minImpact: domain.ImpactHigh,
			actions: []string{"미디어 보도 논조 분석 보고 주기 단축"}},
		{actions: []string{"보도자료 및 미디어 관계 정기 관리"}},
	},
	domain.StakeholderEmployee: {
		{negative: true, minUrgency: domain.UrgencyHigh,
			actions: []string{"내부 구성원 대상 경영진 메시지 발표"}},
		{negative: true, concernKeys: []string{"labor", "safety"},
			actions: []string{"노사 협의 채널 가동 및 안전 점검 강화"}},
		{actions: []string{"조직 내부 여론 정기 파악"}},
	},
	domain.StakeholderPartner: {
		{negative: true, concernKeys: []string{"dispute"},
			actions: []string{"협력사 분쟁 사안 법무 검토 및 협의 재개"}},
		{minImpact: domain.ImpactHigh,
			actions: []string{"주요 파트너 대상 상황 공유 미팅"}},
		{actions: []string{"파트너 관계 정기 점검"}},
	},
	domain.StakeholderCompetitor: {
		{minImpact: domain.ImpactHigh,
			actions: []string{"경쟁 동향 심층 분석 및 대응 전략 수립"}},
		{actions: []string{"경쟁사 동향 정기 모니터링"}},
	},
	domain.StakeholderCommunity: {
		{negative: true, concernKeys: []string{"relations", "environment"},
			actions: []string{"지역 주민 소통 간담회 개최", "환경 영향 저감 조치 점검"}},
		{actions: []string{"지역사회 공헌 활동 지속"}},
	},
}
