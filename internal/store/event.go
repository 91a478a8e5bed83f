package store

import (
	"context"
	"database/sql"
	"fmt"
)

// eventRepo implements EventRepo over raw SQL.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_events (
			session_id, task_id, task_title,
			planned_minutes, actual_minutes, focus_score, xp_gained,
			completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, data.SessionID, data.TaskID, data.TaskTitle,
		data.PlannedMinutes, data.ActualMinutes, data.FocusScore, data.XPGained,
		data.CompletedAt)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, task_id, task_title,
			planned_minutes, actual_minutes, focus_score, xp_gained,
			completed_at
		FROM session_events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.TaskID, &rec.TaskTitle,
			&rec.PlannedMinutes, &rec.ActualMinutes, &rec.FocusScore, &rec.XPGained,
			&rec.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("session event rows: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (
			provider, model, purpose,
			input_tokens, output_tokens, latency_ms,
			success, error_message, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("save llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, provider, model, purpose,
			input_tokens, output_tokens, latency_ms,
			success, error_message, created_at
		FROM llm_events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestRecord
	for rows.Next() {
		var rec LLMRequestRecord
		var errMsg sql.NullString
		if err := rows.Scan(
			&rec.ID, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs,
			&rec.Success, &errMsg, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		rec.ErrorMessage = errMsg.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("llm event rows: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*),
			COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0),
			COALESCE(AVG(latency_ms), 0)
		FROM llm_events
		GROUP BY purpose
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []LLMPurposeUsage
	for rows.Next() {
		var u LLMPurposeUsage
		var avg float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("llm usage rows: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*),
			COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		FROM llm_events
		GROUP BY model
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage by model: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var u LLMModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm model usage: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("llm model usage rows: %w", err)
	}
	return out, nil
}
