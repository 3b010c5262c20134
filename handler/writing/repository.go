package writing

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InsertAttemptDto struct {
	AttemptId     string
	UserIdToken   string
	OriginalText  string
	CorrectedText string
	OverallScore  int
	ErrorCount    int
	XpAwarded     decimal.Decimal
	Detail        json.RawMessage
}

type InsertAttemptFunc func(ctx context.Context, logger *zap.Logger, dto InsertAttemptDto) error

func NewInsertAttemptFunc(db *pgxpool.Pool) InsertAttemptFunc {
	return func(ctx context.Context, logger *zap.Logger, dto InsertAttemptDto) error {

		sql := `
		insert into tbl_correction_attempt
			(id, user_id_token, original_text, corrected_text, overall_score, error_count, xp_awarded, detail, created_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8, now());
		`
		_, err := db.Exec(ctx, sql,
			dto.AttemptId, dto.UserIdToken, dto.OriginalText, dto.CorrectedText,
			dto.OverallScore, dto.ErrorCount, dto.XpAwarded, dto.Detail,
		)
		if err != nil {
			logger.Error(err.Error())
			return errors.New("failed to insert correction attempt")
		}

		return nil
	}
}
