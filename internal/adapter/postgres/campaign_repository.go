package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campaign-payouts/internal/core/domain"
	"campaign-payouts/internal/core/port"
)

const (
	// uniqueViolation is the SQLSTATE raised by the (campaign_id, country)
	// constraint on payouts.
	uniqueViolation = "23505"
	// numericOutOfRange is raised when an amount exceeds what NUMERIC can
	// hold.
	numericOutOfRange = "22003"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// InTx runs fn in a read committed transaction. Campaign rows are locked
// explicitly by LockCampaign, which serializes writers of one campaign.
func (r *CampaignRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx port.CampaignTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()
	return fn(ctx, &campaignTx{q: tx})
}

const campaignColumns = `id, title, landing_url, is_running, country, created_at, updated_at`

// ListCampaigns returns campaigns matching f together with their payouts.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Title != nil {
		add(`title ILIKE '%%' || $%d || '%%'`, escapeLike(*f.Title))
	}
	if f.LandingURL != nil {
		add(`landing_url ILIKE '%%' || $%d || '%%'`, escapeLike(*f.LandingURL))
	}
	if f.IsRunning != nil {
		add(`is_running = $%d`, *f.IsRunning)
	}
	if f.Country != nil {
		add(`country = $%d`, *f.Country)
	}

	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	args = append(args, f.Offset)
	query += fmt.Sprintf(` ORDER BY id OFFSET $%d`, len(args))
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return campaigns, nil
	}

	ids := make([]int64, len(campaigns))
	for i := range campaigns {
		ids[i] = campaigns[i].ID
	}
	payouts, err := loadPayouts(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		campaigns[i].Payouts = payouts[campaigns[i].ID]
	}
	return campaigns, nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return getCampaign(ctx, r.pool, id, false)
}

// GetPayout returns a payout by id.
func (r *CampaignRepository) GetPayout(ctx context.Context, id int64) (*domain.Payout, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+payoutColumns+` FROM payouts WHERE id = $1`, id)
	p, err := scanPayout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payout %d: %w", id, err)
	}
	return &p, nil
}

// campaignTx implements port.CampaignTx on top of a pgx transaction.
type campaignTx struct {
	q querier
}

func (t *campaignTx) LockCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return getCampaign(ctx, t.q, id, true)
}

func (t *campaignTx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	err := t.q.QueryRow(ctx, `INSERT INTO campaigns (title, landing_url, is_running, country)
VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		c.Title, c.LandingURL, c.IsRunning, c.Country).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return t.insertPayouts(ctx, c.ID, c.Payouts)
}

func (t *campaignTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := t.q.QueryRow(ctx, `UPDATE campaigns
SET title = $1, landing_url = $2, is_running = $3, country = $4, updated_at = now()
WHERE id = $5 RETURNING updated_at`,
		c.Title, c.LandingURL, c.IsRunning, c.Country, c.ID).Scan(&c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	return nil
}

func (t *campaignTx) DeleteCampaign(ctx context.Context, id int64) error {
	// payouts go with the campaign through ON DELETE CASCADE
	if _, err := t.q.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete campaign %d: %w", id, err)
	}
	return nil
}

func (t *campaignTx) InsertPayout(ctx context.Context, p *domain.Payout) error {
	err := t.q.QueryRow(ctx, `INSERT INTO payouts (campaign_id, country, amount)
VALUES ($1, $2, $3::numeric) RETURNING id, created_at, updated_at`,
		p.CampaignID, p.Country, p.Amount.String()).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payoutError(err, p)
	}
	return nil
}

func (t *campaignTx) UpdatePayout(ctx context.Context, p *domain.Payout) error {
	err := t.q.QueryRow(ctx, `UPDATE payouts
SET country = $1, amount = $2::numeric, updated_at = now()
WHERE id = $3 RETURNING updated_at`,
		p.Country, p.Amount.String(), p.ID).Scan(&p.UpdatedAt)
	if err != nil {
		return payoutError(err, p)
	}
	return nil
}

func (t *campaignTx) DeletePayout(ctx context.Context, id int64) error {
	if _, err := t.q.Exec(ctx, `DELETE FROM payouts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete payout %d: %w", id, err)
	}
	return nil
}

func (t *campaignTx) ReplacePayouts(ctx context.Context, campaignID int64, payouts []domain.Payout) error {
	if _, err := t.q.Exec(ctx, `DELETE FROM payouts WHERE campaign_id = $1`, campaignID); err != nil {
		return fmt.Errorf("clear payouts of campaign %d: %w", campaignID, err)
	}
	return t.insertPayouts(ctx, campaignID, payouts)
}

func (t *campaignTx) insertPayouts(ctx context.Context, campaignID int64, payouts []domain.Payout) error {
	for i := range payouts {
		payouts[i].CampaignID = campaignID
		if err := t.InsertPayout(ctx, &payouts[i]); err != nil {
			return err
		}
	}
	return nil
}

const payoutColumns = `id, campaign_id, country, amount::text, created_at, updated_at`

func getCampaign(ctx context.Context, q querier, id int64, forUpdate bool) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	payouts, err := loadPayouts(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	c.Payouts = payouts[id]
	return &c, nil
}

// loadPayouts returns the payouts of the given campaigns keyed by campaign
// id, each slice ordered by payout id.
func loadPayouts(ctx context.Context, q querier, campaignIDs []int64) (map[int64][]domain.Payout, error) {
	rows, err := q.Query(ctx, `SELECT `+payoutColumns+`
FROM payouts WHERE campaign_id = ANY($1) ORDER BY campaign_id, id`, campaignIDs)
	if err != nil {
		return nil, fmt.Errorf("load payouts: %w", err)
	}
	payouts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payout, error) {
		return scanPayout(row)
	})
	if err != nil {
		return nil, fmt.Errorf("load payouts: %w", err)
	}
	out := make(map[int64][]domain.Payout, len(campaignIDs))
	for _, p := range payouts {
		out[p.CampaignID] = append(out[p.CampaignID], p)
	}
	return out, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Title, &c.LandingURL, &c.IsRunning, &c.Country, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanPayout(row pgx.Row) (domain.Payout, error) {
	var (
		p      domain.Payout
		amount string
	)
	if err := row.Scan(&p.ID, &p.CampaignID, &p.Country, &amount, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	var err error
	if p.Amount, err = decimal.NewFromString(amount); err != nil {
		return p, fmt.Errorf("payout %d amount %q: %w", p.ID, amount, err)
	}
	return p, nil
}

// payoutError turns constraint violations caused by the payout's values
// into domain errors and wraps everything else.
func payoutError(err error, p *domain.Payout) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return domain.DuplicateCountry(p.Country)
		case numericOutOfRange:
			return domain.InvalidAmount(p.Amount.String())
		}
	}
	return fmt.Errorf("write payout: %w", err)
}

// escapeLike escapes LIKE wildcards so that s matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
