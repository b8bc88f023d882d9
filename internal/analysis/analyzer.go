// Package analysis defines the order-analysis collaborator contract and the
// local simulator that stands in for the real analysis backend.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobmate/recruit-service/internal/model"
)

// Analyzer produces search keywords and filter suggestions for an order.
// A call may take several seconds and may fail; callers must not hold engine
// locks across it.
type Analyzer interface {
	Analyze(ctx context.Context, order model.JobPostingOrder) (model.AnalysisData, error)
}

const defaultDelay = 3 * time.Second

// Simulator is a local Analyzer that returns a canned result after a fixed
// delay. It never talks to the network; the delay stands in for the latency
// of the real webhook-based backend.
type Simulator struct {
	Delay time.Duration // zero means defaultDelay
}

// NewSimulator returns a Simulator with the given delay. A zero delay falls
// back to the default.
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{Delay: delay}
}

// Analyze waits out the simulated latency and returns a result derived from
// the order's position title.
func (s *Simulator) Analyze(ctx context.Context, order model.JobPostingOrder) (model.AnalysisData, error) {
	delay := s.Delay
	if delay == 0 {
		delay = defaultDelay
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return model.AnalysisData{}, ctx.Err()
	}

	return model.AnalysisData{
		PositionGuide: fmt.Sprintf(
			"%s is looking for a %s (%s). Strong hands-on delivery experience and "+
				"proven collaboration skills are essential; candidates who keep up "+
				"with current tooling in the field are preferred.",
			order.CompanyName, order.PositionTitle, order.CareerLevel,
		),
		Keywords: keywordsFor(order),
		OtherInfo: model.AnalysisFilters{
			Experience: "3-7 years",
			Age:        "25-35",
			Gender:     "Any",
			Location:   "Seoul/Gyeonggi preferred",
			Education:  "Bachelor's or above",
			Salary:     "50M-80M KRW",
		},
	}, nil
}

// keywordsFor seeds the keyword list from the position title so the payload
// tracks its input, then pads with generic recruiting terms up to ten.
func keywordsFor(order model.JobPostingOrder) []string {
	keywords := strings.Fields(order.PositionTitle)

	generic := []string{
		"Teamwork", "Communication", "Problem solving", "Delivery",
		"Best practices", "Code quality", "Mentoring", "Ownership",
		"Documentation", "Continuous learning",
	}
	for _, g := range generic {
		if len(keywords) >= 10 {
			break
		}
		keywords = append(keywords, g)
	}
	return keywords
}
