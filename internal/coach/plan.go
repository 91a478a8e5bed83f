package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"focusdeck/internal/llm"
	"focusdeck/internal/stats"
)

// StudyPlan is a generated Pomodoro schedule for one subject.
type StudyPlan struct {
	Subject  string
	Sessions []PlanSession
	Tips     []string
}

// PlanSession is one work block in a study plan.
type PlanSession struct {
	Objective    string
	WorkMinutes  int
	BreakMinutes int
}

// TotalMinutes returns the combined work and break time of the plan.
func (p *StudyPlan) TotalMinutes() int {
	total := 0
	for _, sess := range p.Sessions {
		total += sess.WorkMinutes + sess.BreakMinutes
	}
	return total
}

type planOutput struct {
	Subject  string              `json:"subject"`
	Sessions []planSessionOutput `json:"sessions"`
	Tips     []string            `json:"tips"`
}

type planSessionOutput struct {
	Objective    string `json:"objective"`
	WorkMinutes  int    `json:"work_minutes"`
	BreakMinutes int    `json:"break_minutes"`
}

// GenerateStudyPlan asks for a schema-validated study plan sized to the
// available time and the user's demonstrated focus level. A missing
// provider, a provider error, or an unparseable reply degrades to the
// offline plan; only an invalid duration is an error.
func (s *Service) GenerateStudyPlan(ctx context.Context, subject string, durationMinutes int, st stats.UserStats) (*StudyPlan, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("plan duration must be positive, got %d", durationMinutes)
	}
	if s.provider == nil {
		return fallbackPlan(subject, durationMinutes), nil
	}

	ctx = llm.WithPurpose(ctx, "study-plan")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(subject, durationMinutes, st)},
		},
		Schema:      StudyPlanSchema,
		MaxTokens:   s.cfg.PlanMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return fallbackPlan(subject, durationMinutes), nil
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallbackPlan(subject, durationMinutes), nil
	}

	plan := &StudyPlan{
		Subject: out.Subject,
		Tips:    out.Tips,
	}
	for _, sess := range out.Sessions {
		plan.Sessions = append(plan.Sessions, PlanSession{
			Objective:    sess.Objective,
			WorkMinutes:  sess.WorkMinutes,
			BreakMinutes: sess.BreakMinutes,
		})
	}
	return plan, nil
}

// fallbackPlan is the offline study plan: standard 25/5 Pomodoro blocks
// filling the available time, with a short review block for any tail.
func fallbackPlan(subject string, durationMinutes int) *StudyPlan {
	plan := &StudyPlan{
		Subject: subject,
		Tips: []string{
			"Start with the hardest topic while your focus is fresh.",
			"Write a one-line goal before each session begins.",
		},
	}

	remaining := durationMinutes
	for remaining >= 25 {
		sess := PlanSession{Objective: "Focused work on " + subject, WorkMinutes: 25}
		remaining -= 25
		if remaining >= 5 {
			sess.BreakMinutes = 5
			remaining -= 5
		}
		plan.Sessions = append(plan.Sessions, sess)
	}
	if remaining > 0 {
		objective := "Quick review of " + subject
		if len(plan.Sessions) == 0 {
			objective = "Short focused work on " + subject
		}
		plan.Sessions = append(plan.Sessions, PlanSession{Objective: objective, WorkMinutes: remaining})
	}
	return plan
}
