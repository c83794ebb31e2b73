package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// PendingExpirationWorker varre assinaturas presas em PENDING — o
// rastro de um gateway que caiu no meio da cobrança — e as encerra em
// FAILED depois de uma janela configurável. FAILED continua terminal:
// o cliente recomeça o checkout do zero.
type PendingExpirationWorker struct {
	db               *sql.DB
	expirationWindow time.Duration
	tickInterval     time.Duration
}

func NewPendingExpirationWorker(db *sql.DB, window time.Duration) *PendingExpirationWorker {
	if window <= 0 {
		window = 30 * time.Minute
	}
	return &PendingExpirationWorker{
		db:               db,
		expirationWindow: window,
		tickInterval:     1 * time.Minute,
	}
}

func (w *PendingExpirationWorker) Start(ctx context.Context) {
	log.Printf("🕒 Pending Expiration Worker iniciado (janela de %s)", w.expirationWindow)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.expireStale(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Pending Expiration Worker encerrado")
			return
		case <-ticker.C:
			w.expireStale(ctx)
		}
	}
}

func (w *PendingExpirationWorker) expireStale(ctx context.Context) {
	query := `
		UPDATE subscriptions
		SET
			status = 'FAILED',
			updated_at = NOW()
		WHERE
			status = 'PENDING'
			AND created_at < NOW() - ($1 * INTERVAL '1 second')
		RETURNING id, customer_id, created_at
	`

	rows, err := w.db.QueryContext(ctx, query, int64(w.expirationWindow.Seconds()))
	if err != nil {
		log.Printf("❌ Erro ao buscar assinaturas pendentes: %v", err)
		return
	}
	defer rows.Close()

	expiredCount := 0
	for rows.Next() {
		var subID, customerID string
		var createdAt time.Time

		if err := rows.Scan(&subID, &customerID, &createdAt); err != nil {
			log.Printf("⚠️ Erro ao escanear assinatura expirada: %v", err)
			continue
		}

		log.Printf("⏱️ Assinatura pendente expirada: subscription=%s customer=%s elapsed=%s",
			subID, customerID, time.Since(createdAt).Round(time.Minute))
		expiredCount++
	}

	if expiredCount > 0 {
		log.Printf("✅ %d assinatura(s) marcadas como FAILED", expiredCount)
	}
}
