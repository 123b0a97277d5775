package classify

import "NewsPulse/internal/domain"

// DefaultLexicon returns the built-in Korean lexicons. The word lists
// are curated for corporate news; override via classifier.lexiconPath
// when tuning for another domain.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Sentiment:   defaultSentimentWords(),
		Stakeholder: defaultStakeholderGroups(),
	}
}

func defaultSentimentWords() map[domain.Sentiment][]string {
	return map[domain.Sentiment][]string{
		domain.VeryPositive: {
			"최고", "훌륭", "완벽", "탁월", "뛰어난", "우수", "좋은", "만족", "성공",
			"성과", "혁신", "발전", "성장", "개선", "향상", "증가", "상승", "호조",
		},
		domain.Positive: {
			"좋다", "괜찮다", "나쁘지않다", "긍정적", "희망적", "기대", "관심", "추천",
			"도움", "유용", "편리", "효과적", "안정적", "신뢰", "품질",
		},
		domain.Neutral: {
			"보통", "일반적", "평범", "무난", "그저그런", "평가", "분석", "검토",
			"확인", "점검", "조사", "연구", "개발", "계획", "예정",
		},
		domain.Negative: {
			"나쁘다", "부족", "문제", "이슈", "우려", "걱정", "불안", "실망", "아쉽다",
			"개선필요", "부정적", "하락", "감소", "악화", "지연", "취소",
		},
		domain.VeryNegative: {
			"최악", "끔찍", "심각", "위험", "위기", "실패", "파산", "손실", "피해",
			"사고", "문제발생", "중단", "폐지", "철회", "거부", "반대", "항의",
		},
	}
}

func defaultStakeholderGroups() map[domain.Stakeholder][]WordGroup {
	return map[domain.Stakeholder][]WordGroup{
		domain.StakeholderCustomer: {
			{Key: "product_quality", Label: "제품 품질", Words: []string{"품질", "성능", "기능", "디자인", "내구성", "완성도", "퀄리티", "효율", "효과"}},
			{Key: "service", Label: "고객 서비스", Words: []string{"서비스", "고객서비스", "수리", "교환", "환불", "상담", "응대", "친절", "신속"}},
			{Key: "price_value", Label: "가격 및 가치", Words: []string{"가격", "비용", "요금", "할인", "프로모션", "이벤트", "혜택", "가성비", "저렴", "합리적"}},
			{Key: "user_experience", Label: "사용자 경험", Words: []string{"사용", "이용", "경험", "체험", "만족", "불만", "편리", "불편", "직관적", "복잡"}},
			{Key: "purchase", Label: "구매 프로세스", Words: []string{"구매", "주문", "결제", "배송", "포장", "설치", "설정", "등록", "인증"}},
			{Key: "issues", Label: "제품/서비스 문제", Words: []string{"오류", "에러", "버그", "결함", "불량", "고장", "먹통", "느림", "중단"}},
			{Key: "loyalty", Label: "재구매 및 추천", Words: []string{"추천", "권장", "재구매", "재이용", "지속", "유지", "갱신", "업그레이드"}},
		},
		domain.StakeholderInvestor: {
			{Key: "financials", Label: "재무 실적", Words: []string{"매출", "영업이익", "순이익", "실적", "수익", "손익", "부채비율", "자기자본", "총자산"}},
			{Key: "stock", Label: "주가 동향", Words: []string{"주가", "주식", "시가총액", "거래량", "목표주가", "저평가", "고평가"}},
			{Key: "dividend", Label: "배당 정책", Words: []string{"배당", "배당금", "배당률", "주주환원", "자사주매입", "유상증자", "무상증자", "합병"}},
			{Key: "growth", Label: "성장 전망", Words: []string{"성장", "성장률", "전망", "예상", "목표", "전략", "비전", "확장", "진출", "투자"}},
			{Key: "risk", Label: "투자 리스크", Words: []string{"리스크", "불확실성", "변동성", "손실", "적자", "부진", "악화", "경고"}},
			{Key: "market", Label: "시장 경쟁", Words: []string{"시장", "시장점유율", "경쟁력", "업계", "산업", "수요", "공급", "마진"}},
			{Key: "governance", Label: "지배구조", Words: []string{"지배구조", "이사회", "감사", "투명성", "공시", "주주총회", "경영진", "선임"}},
			{Key: "esg", Label: "ESG", Words: []string{"환경", "사회", "지속가능", "친환경", "탄소중립", "사회적책임", "윤리", "컴플라이언스"}},
		},
		domain.StakeholderEmployee: {
			{Key: "hiring", Label: "채용 및 인사", Words: []string{"직원", "임직원", "사원", "인사", "채용", "퇴사", "승진"}},
			{Key: "compensation", Label: "보상 및 복지", Words: []string{"연봉", "급여", "복지", "성과급", "보상", "인상"}},
			{Key: "workplace", Label: "근무 환경", Words: []string{"근무환경", "워라밸", "근무시간", "휴가", "재택근무", "출장"}},
			{Key: "culture", Label: "조직 문화", Words: []string{"조직문화", "소통", "리더십", "교육", "훈련", "멘토링"}},
			{Key: "labor", Label: "노사 관계", Words: []string{"노조", "파업", "단체협상", "노사", "고용", "해고"}},
			{Key: "safety", Label: "산업 안전", Words: []string{"안전", "산재", "사고", "보건", "재해"}},
		},
		domain.StakeholderGovernment: {
			{Key: "regulation", Label: "규제 및 법률", Words: []string{"규제", "법률", "법안", "제도", "정책", "가이드라인", "기준", "표준"}},
			{Key: "approval", Label: "허가 및 승인", Words: []string{"허가", "승인", "인증", "등록", "신고", "면허", "자격"}},
			{Key: "oversight", Label: "감독 및 점검", Words: []string{"감독", "점검", "조사", "감사", "검사", "모니터링"}},
			{Key: "sanction", Label: "제재 및 처벌", Words: []string{"제재", "처벌", "과태료", "벌금", "영업정지", "취소"}},
			{Key: "tax_support", Label: "세제 및 지원", Words: []string{"세금", "세제", "지원금", "보조금", "인센티브"}},
			{Key: "public_policy", Label: "공공정책", Words: []string{"공공", "국가", "정부", "부처", "위원회", "지자체"}},
		},
		domain.StakeholderMedia: {
			{Key: "coverage", Label: "보도 및 취재", Words: []string{"보도", "취재", "기사", "뉴스", "리포트", "특집", "인터뷰"}},
			{Key: "announcement", Label: "발표 및 공시", Words: []string{"발표", "공시", "보도자료", "브리핑", "컨퍼런스"}},
			{Key: "issue", Label: "이슈 및 사건", Words: []string{"이슈", "사건", "논란", "화제", "주목"}},
			{Key: "commentary", Label: "평가 및 분석", Words: []string{"평가", "분석", "전망", "예측", "의견", "시각"}},
			{Key: "promotion", Label: "홍보 및 마케팅", Words: []string{"홍보", "마케팅", "광고", "캠페인"}},
			{Key: "crisis", Label: "위기 및 스캔들", Words: []string{"위기", "스캔들", "비판", "지적", "우려"}},
		},
		domain.StakeholderPartner: {
			{Key: "alliance", Label: "제휴 및 협약", Words: []string{"파트너", "제휴", "파트너십", "협약", "업무협약", "전략적제휴"}},
			{Key: "supply", Label: "공급망", Words: []string{"협력사", "공급업체", "벤더", "공급", "납품", "조달"}},
			{Key: "contract", Label: "계약", Words: []string{"계약", "계약서", "수주", "발주", "외주", "아웃소싱"}},
			{Key: "joint", Label: "공동 사업", Words: []string{"조인트벤처", "컨소시엄", "공동개발", "합작"}},
			{Key: "coexistence", Label: "동반 성장", Words: []string{"동반성장", "상생", "협력", "지원"}},
			{Key: "dispute", Label: "거래 분쟁", Words: []string{"분쟁", "소송", "해지", "위반", "지연"}},
		},
		domain.StakeholderCompetitor: {
			{Key: "rivalry", Label: "경쟁 구도", Words: []string{"경쟁사", "경쟁업체", "라이벌", "경쟁", "동종업계"}},
			{Key: "market_share", Label: "시장 점유율", Words: []string{"시장점유율", "점유율", "순위", "선두", "추격"}},
			{Key: "comparison", Label: "비교 우위", Words: []string{"비교", "대비", "차별화", "우위", "열세", "벤치마킹"}},
			{Key: "strategy", Label: "경쟁 전략", Words: []string{"경쟁력", "경쟁우위", "신제품", "출시", "가격경쟁"}},
			{Key: "imitation", Label: "모방 및 대체", Words: []string{"모방", "카피", "유사", "대체", "특허"}},
			{Key: "industry", Label: "업계 동향", Words: []string{"업계", "산업", "트렌드", "재편", "구조조정"}},
		},
		domain.StakeholderCommunity: {
			{Key: "region", Label: "지역사회", Words: []string{"지역사회", "커뮤니티", "주민", "시민", "지역", "마을"}},
			{Key: "csr", Label: "사회공헌", Words: []string{"사회공헌", "봉사", "기부", "후원", "나눔", "공익"}},
			{Key: "environment", Label: "환경", Words: []string{"환경", "친환경", "오염", "배출", "재활용"}},
			{Key: "sustainability", Label: "지속가능경영", Words: []string{"지속가능", "사회적책임", "윤리경영"}},
			{Key: "jobs", Label: "지역 경제", Words: []string{"지역경제", "일자리", "고용창출", "투자유치"}},
			{Key: "relations", Label: "주민 관계", Words: []string{"민원", "갈등", "소음", "보상", "합의"}},
		},
	}
}
