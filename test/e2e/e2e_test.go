package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/config"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/records"
	"acadgrant/internal/store"

	alog "acadgrant/internal/workers/accounts/account-login"
	rc "acadgrant/internal/workers/accounts/register-contributor"
	cs "acadgrant/internal/workers/scholarship/create-scholarship"
	ls "acadgrant/internal/workers/scholarship/list-scholarships"
	sse "acadgrant/internal/workers/scholarship/save-scholarship-eligibility"
)

const publishProcessID = "scholarship-publishing"

// e2eConfig points the test at a running broker and, optionally, a Redis
// store. Without E2E_ZEEBE_ADDRESS the suite is skipped.
func e2eConfig(t *testing.T) *config.Config {
	t.Helper()
	addr := os.Getenv("E2E_ZEEBE_ADDRESS")
	if addr == "" || testing.Short() {
		t.Skip("E2E_ZEEBE_ADDRESS not set")
	}

	cfg := &config.Config{
		Camunda: config.CamundaConfig{BrokerAddress: addr},
		Store:   config.StoreConfig{Backend: config.BackendMemory},
	}
	if redisAddr := os.Getenv("E2E_REDIS_ADDRESS"); redisAddr != "" {
		cfg.Store = config.StoreConfig{Backend: config.BackendRedis, KeyPrefix: fmt.Sprintf("e2e:%d:", time.Now().UnixNano())}
		cfg.Database.Redis.Address = redisAddr
	}
	return cfg
}

// serviceChain renders a process that runs taskTypes one after another.
func serviceChain(processID string, taskTypes ...string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL" xmlns:zeebe="http://camunda.org/schema/zeebe/1.0" id="Definitions_` + processID + `" targetNamespace="http://bpmn.io/schema/bpmn">
`)
	fmt.Fprintf(&b, "  <bpmn:process id=%q isExecutable=\"true\">\n", processID)
	b.WriteString("    <bpmn:startEvent id=\"start\"/>\n")

	prev := "start"
	for i, taskType := range taskTypes {
		id := fmt.Sprintf("task_%d", i)
		fmt.Fprintf(&b, "    <bpmn:sequenceFlow id=\"flow_%d\" sourceRef=%q targetRef=%q/>\n", i, prev, id)
		fmt.Fprintf(&b, "    <bpmn:serviceTask id=%q name=%q>\n", id, taskType)
		fmt.Fprintf(&b, "      <bpmn:extensionElements><zeebe:taskDefinition type=%q retries=\"1\"/></bpmn:extensionElements>\n", taskType)
		b.WriteString("    </bpmn:serviceTask>\n")
		prev = id
	}
	fmt.Fprintf(&b, "    <bpmn:sequenceFlow id=\"flow_end\" sourceRef=%q targetRef=\"end\"/>\n", prev)
	b.WriteString("    <bpmn:endEvent id=\"end\"/>\n  </bpmn:process>\n</bpmn:definitions>\n")
	return []byte(b.String())
}

func TestScholarshipPublishing(t *testing.T) {
	cfg := e2eConfig(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log := logger.NewTestLogger(t)

	client, err := camunda.NewClientWithConfig(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
		RetryConfig:            &camunda.RetryConfig{MaxRetries: 3, BaseDelay: time.Second, MaxDelay: 4 * time.Second},
	}, log)
	require.NoError(t, err, "zeebe not reachable")
	defer client.Close()

	kv, err := store.Open(ctx, cfg, log)
	require.NoError(t, err)
	defer kv.Close()
	require.NoError(t, kv.Clear(ctx))

	recs := records.New(kv, log)
	zc := client.GetClient()
	wcfg := config.WorkerConfig{Enabled: true, MaxJobsActive: 1, Timeout: 30000}

	handlers := map[string]worker.JobHandler{
		rc.TaskType:   rc.NewHandler(rc.LoadConfig(), recs.Accounts, log).Handle,
		alog.TaskType: alog.NewHandler(alog.LoadConfig(), recs.Accounts, log).Handle,
		sse.TaskType:  sse.NewHandler(sse.LoadConfig(), recs.Accounts, recs.Catalog, log).Handle,
		cs.TaskType:   cs.NewHandler(cs.LoadConfig(), recs.Accounts, recs.Catalog, log).Handle,
		ls.TaskType:   ls.NewHandler(ls.LoadConfig(), recs.Accounts, recs.Catalog, log).Handle,
	}
	for taskType, handler := range handlers {
		w := camunda.StartWorker(zc, taskType, wcfg, handler, log)
		defer w.Close()
	}

	_, err = zc.NewDeployResourceCommand().
		AddResource(serviceChain(publishProcessID, rc.TaskType, alog.TaskType, sse.TaskType, cs.TaskType, ls.TaskType), publishProcessID+".bpmn").
		Send(ctx)
	require.NoError(t, err)

	cmd, err := zc.NewCreateInstanceCommand().
		BPMNProcessId(publishProcessID).
		LatestVersion().
		VariablesFromMap(map[string]interface{}{
			"email":            "org@acme.org",
			"password":         "secret",
			"organizationName": "Acme Fund",
			"role":             "contributor",
			"grantAmount":      "2.5",
			"nationality":      "Indian",
			"cgpa":             "3.0",
			"maxRepayment":     "5",
			"interestRate":     "4.5",
			"moratoriumPeriod": "6",
		})
	require.NoError(t, err)

	result, err := cmd.WithResult().Send(ctx)
	require.NoError(t, err)

	var vars struct {
		LoggedIn      bool   `json:"loggedIn"`
		ScholarshipID string `json:"scholarshipId"`
		Count         int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.GetVariables()), &vars))
	assert.True(t, vars.LoggedIn)
	assert.NotEmpty(t, vars.ScholarshipID)
	assert.Equal(t, 1, vars.Count)

	s, err := recs.Catalog.FindByID(ctx, vars.ScholarshipID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Fund", s.OrganizationName)
	assert.Equal(t, "2.5", s.Eligibility.GrantAmount)
}

func TestServiceChain(t *testing.T) {
	xml := string(serviceChain("p", "a", "b"))
	assert.Contains(t, xml, `<bpmn:process id="p" isExecutable="true">`)
	assert.Contains(t, xml, `sourceRef="task_0" targetRef="task_1"`)
	assert.Contains(t, xml, `<zeebe:taskDefinition type="b" retries="1"/>`)
	assert.Contains(t, xml, `sourceRef="task_1" targetRef="end"`)
}
