// Package model defines the shared data structures for the recruit service.
package model

// AnalysisFilters is the structured search-filter suggestion produced by
// analyzing an order. All fields are free text.
type AnalysisFilters struct {
	Experience string `json:"experience"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	Education  string `json:"education"`
	Salary     string `json:"salary"`
}

// AnalysisData is the result of analyzing one order: a position summary,
// recommended search keywords, and suggested filters.
type AnalysisData struct {
	PositionGuide string          `json:"positionGuide"`
	Keywords      []string        `json:"keywords"`
	OtherInfo     AnalysisFilters `json:"otherInfo"`
}

// JobPostingOrder is one posted position — the root aggregate of the engine.
//
// CreatedAt and Deadline are YYYY-MM-DD strings. An empty Deadline means the
// order has no deadline and stays active indefinitely. AnalysisData is set
// if and only if AnalysisStatus is completed.
type JobPostingOrder struct {
	ID                    string         `json:"id"`
	CompanyName           string         `json:"companyName"`
	PositionTitle         string         `json:"positionTitle"`
	CareerLevel           string         `json:"careerLevel"`
	Responsibilities      string         `json:"responsibilities"`
	Qualifications        string         `json:"qualifications"`
	PreferentialTreatment string         `json:"preferentialTreatment"`
	OtherInfo             string         `json:"otherInfo"`
	Memo                  string         `json:"memo,omitempty"`
	Status                Status         `json:"status"`
	CreatedAt             string         `json:"createdAt"`
	Deadline              string         `json:"deadline,omitempty"`
	IsUrgent              bool           `json:"isUrgent"`
	IsExpanded            bool           `json:"isExpanded"`
	AnalysisStatus        AnalysisStatus `json:"analysisStatus"`
	AnalysisData          *AnalysisData  `json:"analysisData,omitempty"`
}

// Candidate is one profile matched against a single order. Candidates are
// partitioned by order id in a CandidateMap; the candidate itself carries no
// back-reference to its order.
type Candidate struct {
	ID           int      `json:"id"`
	LastName     string   `json:"lastName"`
	BirthYear    int      `json:"birthYear"`
	Age          int      `json:"age"`
	Location     string   `json:"location"`
	Experience   string   `json:"experience"`
	IsEmployed   bool     `json:"isEmployed"`
	MatchRate    int      `json:"matchRate"` // 0-100
	IsMatch      bool     `json:"isMatch"`
	Education    string   `json:"education"`
	Skills       []string `json:"skills"`
	MatchReasons []string `json:"matchReasons"`
}

// CandidateMap groups candidate lists by the owning order id.
type CandidateMap map[string][]Candidate
