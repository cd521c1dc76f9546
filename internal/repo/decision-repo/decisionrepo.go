package decisionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/redstone-admin/internal/domain"
	"github.com/GlebRadaev/redstone-admin/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateDecision(ctx context.Context, decision *domain.Decision) (*domain.Decision, error) {
	query := `
		INSERT INTO decisions (id, withdrawal_id, admin_id, kind, selected_wallet, amount, admin_notes, outcome, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		decision.ID,
		decision.WithdrawalID,
		decision.AdminID,
		string(decision.Kind),
		decision.SelectedWallet,
		decision.Amount,
		decision.AdminNotes,
		string(decision.Outcome),
		decision.Message,
	).Scan(&decision.CreatedAt)
	if err != nil {
		zap.L().Error("can't save decision", zap.String("withdrawalID", decision.WithdrawalID), zap.Error(err))
		return nil, err
	}
	return decision, nil
}

func (r *Repository) ListDecisions(ctx context.Context, limit int) ([]domain.Decision, error) {
	query := `
		SELECT id, withdrawal_id, admin_id, kind, selected_wallet, amount, admin_notes, outcome, message, created_at
		FROM decisions
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch decisions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var decisions []domain.Decision
	for rows.Next() {
		var (
			d       domain.Decision
			kind    string
			outcome string
		)
		err := rows.Scan(&d.ID, &d.WithdrawalID, &d.AdminID, &kind, &d.SelectedWallet, &d.Amount, &d.AdminNotes, &outcome, &d.Message, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan decision row", zap.Error(err))
			return nil, err
		}
		d.Kind, d.Outcome = domain.DecisionKind(kind), domain.DecisionOutcome(outcome)
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate decisions", zap.Error(err))
		return nil, err
	}

	return decisions, nil
}
