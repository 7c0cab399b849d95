package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/internal/kvstore"
	"github.com/jafarshop/storeconnect/pkg/errors"
)

func pushflowCfg(baseURL string) func() config.PushflowConfig {
	return func() config.PushflowConfig {
		return config.PushflowConfig{
			BaseURL:     baseURL,
			InstanceID:  "inst-1",
			AccessToken: "token",
		}
	}
}

func TestPushflowSend(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody pushflowSendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(pushflowSendResponse{Sent: true})
	}))
	defer server.Close()

	client := NewPushflowClient(pushflowCfg(server.URL), zap.NewNop())
	err := client.Send(context.Background(), "+15551234567", "Subject", "Body text")
	require.NoError(t, err)

	assert.Equal(t, "/v1/instances/inst-1/messages", gotPath)
	assert.Equal(t, "Bearer token", gotAuth)
	assert.Equal(t, "+15551234567", gotBody.To)
	assert.Equal(t, "Subject\nBody text", gotBody.Message)
}

func TestPushflowSendRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pushflowSendResponse{Sent: false, Error: "insufficient credits"})
	}))
	defer server.Close()

	client := NewPushflowClient(pushflowCfg(server.URL), zap.NewNop())
	err := client.Send(context.Background(), "+15551234567", "", "Body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient credits")
}

func TestPushflowSendNotConfigured(t *testing.T) {
	client := NewPushflowClient(func() config.PushflowConfig {
		return config.PushflowConfig{BaseURL: "https://api.pushflow.io"}
	}, zap.NewNop())

	err := client.Send(context.Background(), "+15551234567", "", "Body")
	require.Error(t, err)
	assert.IsType(t, &errors.ErrNotConfigured{}, err)
}

func TestRecordLogAppendAndAll(t *testing.T) {
	kv, err := kvstore.NewFileStore(afero.NewMemMapFs(), "/data", zap.NewNop())
	require.NoError(t, err)
	log := NewRecordLog(kv, zap.NewNop())

	assert.Empty(t, log.All())

	record, err := log.Append(SendRecord{
		OrderID:     "order-1",
		OrderNumber: "#1001",
		Method:      MethodSMS,
		Target:      "+15551234567",
		Subject:     "Shipped",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.SentAt.IsZero())

	all := log.All()
	require.Len(t, all, 1)
	assert.Equal(t, record.ID, all[0].ID)
	assert.Equal(t, MethodSMS, all[0].Method)
}
