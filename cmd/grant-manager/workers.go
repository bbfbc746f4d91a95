// cmd/grant-manager/workers.go
package main

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"

	awsclients "acadgrant/internal/common/aws"
	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/config"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/records"
	activities "acadgrant/pkg/registry"

	alog "acadgrant/internal/workers/accounts/account-login"
	alo "acadgrant/internal/workers/accounts/account-logout"
	rc "acadgrant/internal/workers/accounts/register-contributor"
	rs "acadgrant/internal/workers/accounts/register-student"
	usp "acadgrant/internal/workers/accounts/update-student-profile"

	cs "acadgrant/internal/workers/scholarship/create-scholarship"
	ls "acadgrant/internal/workers/scholarship/list-scholarships"
	sse "acadgrant/internal/workers/scholarship/save-scholarship-eligibility"

	da "acadgrant/internal/workers/application/decide-application"
	la "acadgrant/internal/workers/application/list-applicants"
	lsa "acadgrant/internal/workers/application/list-student-applications"
	nad "acadgrant/internal/workers/application/notify-application-decision"
	sa "acadgrant/internal/workers/application/submit-application"
)

// registry opens job workers and remembers them for shutdown.
type registry struct {
	cfg     *config.Config
	client  zbc.Client
	log     logger.Logger
	workers []worker.JobWorker
}

func (r *registry) start(taskType string, handler worker.JobHandler) {
	w := camunda.StartWorker(r.client, taskType, config.GetWorkerConfig(r.cfg, taskType), handler, r.log)
	if w != nil {
		r.workers = append(r.workers, w)
	}
}

// timeout is the worker's configured job timeout, or def when unset.
func (r *registry) timeout(taskType string, def time.Duration) time.Duration {
	if d := config.GetDuration(config.GetWorkerConfig(r.cfg, taskType).Timeout); d > 0 {
		return d
	}
	return def
}

func (r *registry) closeAll() {
	for _, w := range r.workers {
		w.Close()
		w.AwaitClose()
	}
	r.workers = nil
}

func registerWorkers(ctx context.Context, reg *registry, cfg *config.Config, recs *records.Records, decisions records.Decider) error {
	log := reg.log

	names := make([]string, 0, len(cfg.Workers))
	for name := range cfg.Workers {
		names = append(names, name)
	}
	if unknown := activities.Default().Unknown(names); len(unknown) > 0 {
		log.Warn("config lists unknown workers", map[string]interface{}{"workers": unknown})
	}

	// --- Accounts ---
	{
		c := rc.LoadConfig()
		c.Timeout = reg.timeout(rc.TaskType, c.Timeout)
		reg.start(rc.TaskType, rc.NewHandler(c, recs.Accounts, log).Handle)
	}
	{
		c := alog.LoadConfig()
		c.Timeout = reg.timeout(alog.TaskType, c.Timeout)
		reg.start(alog.TaskType, alog.NewHandler(c, recs.Accounts, log).Handle)
	}
	{
		c := alo.LoadConfig()
		c.Timeout = reg.timeout(alo.TaskType, c.Timeout)
		reg.start(alo.TaskType, alo.NewHandler(c, recs.Accounts, log).Handle)
	}
	{
		c := rs.LoadConfig()
		c.Timeout = reg.timeout(rs.TaskType, c.Timeout)
		reg.start(rs.TaskType, rs.NewHandler(c, recs.Accounts, log).Handle)
	}
	{
		c := usp.LoadConfig()
		c.Timeout = reg.timeout(usp.TaskType, c.Timeout)
		reg.start(usp.TaskType, usp.NewHandler(c, recs.Accounts, recs.Ledger, log).Handle)
	}

	// --- Scholarships ---
	{
		c := sse.LoadConfig()
		c.Timeout = reg.timeout(sse.TaskType, c.Timeout)
		reg.start(sse.TaskType, sse.NewHandler(c, recs.Accounts, recs.Catalog, log).Handle)
	}
	{
		c := cs.LoadConfig()
		c.Timeout = reg.timeout(cs.TaskType, c.Timeout)
		reg.start(cs.TaskType, cs.NewHandler(c, recs.Accounts, recs.Catalog, log).Handle)
	}
	{
		c := ls.LoadConfig()
		c.Timeout = reg.timeout(ls.TaskType, c.Timeout)
		reg.start(ls.TaskType, ls.NewHandler(c, recs.Accounts, recs.Catalog, log).Handle)
	}

	// --- Applications ---
	{
		c := sa.LoadConfig()
		c.Timeout = reg.timeout(sa.TaskType, c.Timeout)
		reg.start(sa.TaskType, sa.NewHandler(c, recs.Accounts, recs.Catalog, recs.Ledger, log).Handle)
	}
	{
		c := la.LoadConfig()
		c.Timeout = reg.timeout(la.TaskType, c.Timeout)
		reg.start(la.TaskType, la.NewHandler(c, recs.Accounts, recs.Catalog, recs.Ledger, log).Handle)
	}
	{
		c := lsa.LoadConfig()
		c.Timeout = reg.timeout(lsa.TaskType, c.Timeout)
		reg.start(lsa.TaskType, lsa.NewHandler(c, recs.Accounts, recs.Ledger, log).Handle)
	}
	{
		c := da.LoadConfig()
		c.Timeout = reg.timeout(da.TaskType, c.Timeout)
		if err := c.Validate(config.GetDuration(cfg.Wallet.ConfirmTimeout)); err != nil {
			log.Warn("decide-application timeout shorter than payment confirmation", map[string]interface{}{
				"error": err.Error(),
			})
		}
		reg.start(da.TaskType, da.NewHandler(c, decisions, recs.Accounts, recs.Catalog, log).Handle)
	}

	notify, err := newNotifyHandler(ctx, reg, cfg, recs)
	if err != nil {
		return err
	}
	reg.start(nad.TaskType, notify.Handle)
	return nil
}

func newNotifyHandler(ctx context.Context, reg *registry, cfg *config.Config, recs *records.Records) (*nad.Handler, error) {
	n := cfg.Notifications
	c := nad.LoadConfig(n)
	c.Timeout = reg.timeout(nad.TaskType, c.Timeout)

	var (
		email nad.EmailSender
		topic nad.TopicPublisher
	)
	if n.Email.Enabled || n.SNS.Enabled {
		awsCfg, err := awsclients.LoadConfig(ctx, n.AWS.Region)
		if err != nil {
			return nil, err
		}
		if n.Email.Enabled {
			email = awsclients.NewSESClient(awsCfg, n.Email.FromEmail)
		}
		if n.SNS.Enabled {
			topic = awsclients.NewSNSClient(awsCfg, n.SNS.TopicARN)
		}
	}
	return nad.NewHandler(c, recs.Catalog, recs.Ledger, email, topic, reg.log), nil
}
