package pronunciation

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InsertAttemptDto struct {
	AttemptId    string
	UserIdToken  string
	TargetText   string
	SpokenText   string
	Mode         string
	OverallScore int
	XpAwarded    decimal.Decimal
	Detail       json.RawMessage
}

type InsertAttemptFunc func(ctx context.Context, logger *zap.Logger, dto InsertAttemptDto) error

func NewInsertAttemptFunc(db *pgxpool.Pool) InsertAttemptFunc {
	return func(ctx context.Context, logger *zap.Logger, dto InsertAttemptDto) error {

		sql := `
		insert into tbl_pronunciation_attempt
			(id, user_id_token, target_text, spoken_text, mode, overall_score, xp_awarded, detail, created_at)
		values ($1,$2,$3,$4,$5,$6,$7,$8, now());
		`
		_, err := db.Exec(ctx, sql,
			dto.AttemptId, dto.UserIdToken, dto.TargetText, dto.SpokenText,
			dto.Mode, dto.OverallScore, dto.XpAwarded, dto.Detail,
		)
		if err != nil {
			logger.Error(err.Error())
			return errors.New("failed to insert pronunciation attempt")
		}

		return nil
	}
}
