package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/qpeachy/deactivate-user-airtable/internal/usecase"
)

const jobName = "airtable_user_deactivation"

// Pusher empurra os números do batch para um Prometheus Pushgateway.
// Job one-shot não tem endpoint /metrics para scrape, então o push no
// fim da execução é o jeito de enxergar o histórico no Grafana.
type Pusher struct {
	gatewayURL string
}

func NewPusher(gatewayURL string) *Pusher {
	return &Pusher{gatewayURL: gatewayURL}
}

func (p *Pusher) RecordRun(report *usecase.RunReport) error {
	// Gauges novos a cada run: nada de registry global, o run é efêmero
	succeeded := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deactivation_succeeded",
		Help: "Users deactivated in the last run",
	})
	failed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deactivation_failed",
		Help: "Users that failed validation or the API call in the last run",
	})
	skipped := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deactivation_skipped",
		Help: "Users skipped because the ledger already had them",
	})
	alreadyDone := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deactivation_ledger_size",
		Help: "Ids loaded from the ledger at startup",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deactivation_run_duration_seconds",
		Help: "Wall time of the last run",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deactivation_last_run_timestamp_seconds",
		Help: "Unix time the last run finished",
	})

	succeeded.Set(float64(len(report.Succeeded)))
	failed.Set(float64(len(report.Failed)))
	skipped.Set(float64(report.Skipped))
	alreadyDone.Set(float64(report.AlreadyDone))
	duration.Set(report.FinishedAt.Sub(report.StartedAt).Seconds())
	lastRun.Set(float64(report.FinishedAt.Unix()))

	err := push.New(p.gatewayURL, jobName).
		Collector(succeeded).
		Collector(failed).
		Collector(skipped).
		Collector(alreadyDone).
		Collector(duration).
		Collector(lastRun).
		Push()
	if err != nil {
		return fmt.Errorf("erro ao enviar métricas para o pushgateway: %w", err)
	}

	return nil
}
