package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tender-dapp/internal/app"
	"tender-dapp/internal/config"
	"tender-dapp/internal/server"
	"tender-dapp/utils"
)

// Well-known development keys of the local hardhat node
var devKeys = []string{
	"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
}

var (
	officialAccount = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	bidderOne       = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bidderTwo       = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func init() {
	utils.SetOutput(io.Discard)
}

// SetupTestRouter wires the application over the in-memory ledger with the
// hardhat accounts and connects the wallet. The first account is the official.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "8080"},
		Chain:    config.ChainConfig{Backend: config.BackendMemory, ChainID: 31337},
		Wallet:   config.WalletConfig{Keys: devKeys},
		Official: config.OfficialConfig{Address: officialAccount.Hex()},
	}

	a, err := app.Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	_, err = a.Service.Connect(context.Background())
	require.NoError(t, err)

	return server.SetupRouter(a.Service, a.Hub)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// dataOf returns the data member of a success envelope
func dataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no object data: %v", resp)
	return data
}
