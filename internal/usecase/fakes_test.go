package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	testDeployer = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testContract = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testTreasury = "0x3333333333333333333333333333333333333333"
	testTime     = time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
)

func fixedClock() time.Time { return testTime }

// mockChain records every call made against the network
type mockChain struct {
	mu sync.Mutex

	ChainIDValue uint64
	Balance      *big.Int
	ConnectErr   error
	BalanceErr   error
	SubmitErr    error
	WaitErr      error

	Calls           []string
	ConstructorArgs []any
}

func newMockChain() *mockChain {
	return &mockChain{ChainIDValue: 11155111, Balance: big.NewInt(2_000_000_000_000_000_000)}
}

func (m *mockChain) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

func (m *mockChain) Connect(ctx context.Context, network *config.Network) error {
	m.record("Connect")
	return m.ConnectErr
}

func (m *mockChain) Deployer() common.Address { return testDeployer }

func (m *mockChain) ChainID() uint64 { return m.ChainIDValue }

func (m *mockChain) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	m.record("BalanceAt")
	if m.BalanceErr != nil {
		return nil, m.BalanceErr
	}
	return m.Balance, nil
}

func (m *mockChain) SubmitCreation(ctx context.Context, artifact *models.Artifact, constructorArgs ...any) (*models.PendingDeployment, error) {
	m.record("SubmitCreation")
	m.ConstructorArgs = constructorArgs
	if m.SubmitErr != nil {
		return nil, m.SubmitErr
	}
	return &models.PendingDeployment{
		Address:     testContract,
		Deployer:    testDeployer,
		Transaction: types.NewContractCreation(0, big.NewInt(0), 3_000_000, big.NewInt(1), artifact.Bytecode),
	}, nil
}

func (m *mockChain) WaitDeployed(ctx context.Context, pending *models.PendingDeployment) (*models.ContractHandle, error) {
	m.record("WaitDeployed")
	if m.WaitErr != nil {
		return nil, m.WaitErr
	}
	return &models.ContractHandle{
		Address:         pending.Address,
		Deployer:        pending.Deployer,
		TransactionHash: pending.TxHash(),
		BlockNumber:     42,
		GasUsed:         1_234_567,
	}, nil
}

// mockToken answers every getter with fixed values; FailQuery makes one fail
type mockToken struct {
	FailQuery string
	Treasury  common.Address
	Exempt    map[common.Address]bool
}

func newMockToken(treasury string) *mockToken {
	t := common.HexToAddress(treasury)
	return &mockToken{
		Treasury: t,
		Exempt:   map[common.Address]bool{testDeployer: true, testContract: true, t: true},
	}
}

func (m *mockToken) fail(query string) error {
	if m.FailQuery == query {
		return fmt.Errorf("execution reverted")
	}
	return nil
}

func (m *mockToken) Name(ctx context.Context) (string, error) {
	return "Arclara", m.fail(usecase.QueryName)
}

func (m *mockToken) Symbol(ctx context.Context) (string, error) {
	return "ARCL", m.fail(usecase.QuerySymbol)
}

func (m *mockToken) Decimals(ctx context.Context) (uint8, error) {
	return 18, m.fail(usecase.QueryDecimals)
}

func (m *mockToken) TotalSupply(ctx context.Context) (*big.Int, error) {
	supply, _ := new(big.Int).SetString("1000000000000000000000000000", 10)
	return supply, m.fail(usecase.QueryTotalSupply)
}

func (m *mockToken) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	if account != testDeployer {
		return big.NewInt(0), nil
	}
	supply, _ := new(big.Int).SetString("1000000000000000000000000000", 10)
	return supply, m.fail(usecase.QueryDeployerBalance)
}

func (m *mockToken) BurnBps(ctx context.Context) (*big.Int, error) {
	return big.NewInt(100), m.fail(usecase.QueryBurnBps)
}

func (m *mockToken) TreasuryBps(ctx context.Context) (*big.Int, error) {
	return big.NewInt(200), m.fail(usecase.QueryTreasuryBps)
}

func (m *mockToken) MaxWalletBps(ctx context.Context) (*big.Int, error) {
	return big.NewInt(200), m.fail(usecase.QueryMaxWalletBps)
}

func (m *mockToken) MaxSellBps(ctx context.Context) (*big.Int, error) {
	return big.NewInt(100), m.fail(usecase.QueryMaxSellBps)
}

func (m *mockToken) CooldownSeconds(ctx context.Context) (*big.Int, error) {
	return big.NewInt(60), m.fail(usecase.QueryCooldownSeconds)
}

func (m *mockToken) TreasuryWallet(ctx context.Context) (common.Address, error) {
	return m.Treasury, m.fail(usecase.QueryTreasuryWallet)
}

func (m *mockToken) IsExempt(ctx context.Context, account common.Address) (bool, error) {
	var query string
	switch account {
	case testDeployer:
		query = usecase.QueryDeployerExempt
	case testContract:
		query = usecase.QueryContractExempt
	default:
		query = usecase.QueryTreasuryExempt
	}
	return m.Exempt[account], m.fail(query)
}

type mockBinder struct {
	Token   *mockToken
	BindErr error
}

func (m *mockBinder) BindToken(handle *models.ContractHandle) (usecase.TokenCaller, error) {
	if m.BindErr != nil {
		return nil, m.BindErr
	}
	return m.Token, nil
}

// memoryStore keeps records in memory, keyed by network
type memoryStore struct {
	Records map[string]*models.DeploymentRecord
	SaveErr error
	Saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{Records: map[string]*models.DeploymentRecord{}}
}

func (s *memoryStore) SaveRecord(ctx context.Context, record *models.DeploymentRecord) (string, error) {
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	s.Saves++
	s.Records[record.Network] = record
	return s.RecordPath(record.Network), nil
}

func (s *memoryStore) LoadRecord(ctx context.Context, network string) (*models.DeploymentRecord, error) {
	record, ok := s.Records[network]
	if !ok {
		return nil, fmt.Errorf("deployment record for %s: %w", network, domain.ErrNotFound)
	}
	return record, nil
}

func (s *memoryStore) RecordPath(network string) string {
	return "deployments/" + network + "-deployment.json"
}

// mockResolver resolves names from a fixed table. With Any set, any name
// resolves to a local endpoint.
type mockResolver struct {
	Networks map[string]*config.Network
	Any      bool
}

func (r *mockResolver) GetNetworks(ctx context.Context) []string {
	names := make([]string, 0, len(r.Networks))
	for name := range r.Networks {
		names = append(names, name)
	}
	return names
}

func (r *mockResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	if network, ok := r.Networks[name]; ok {
		return network, nil
	}
	if r.Any {
		return &config.Network{Name: name, RPCURL: "http://127.0.0.1:8545"}, nil
	}
	return nil, fmt.Errorf("network %s: %w", name, domain.ErrNotFound)
}

type mockArtifacts struct {
	Err error
}

func (m *mockArtifacts) LoadArtifact(ctx context.Context, path string) (*models.Artifact, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.Artifact{ContractName: "ArclaraToken", SourcePath: path, Bytecode: []byte{0x60, 0x80}}, nil
}

type mockConfirmer struct {
	Answer bool
	Err    error
	Asked  []usecase.BroadcastSummary
}

func (m *mockConfirmer) ConfirmBroadcast(ctx context.Context, summary usecase.BroadcastSummary) (bool, error) {
	m.Asked = append(m.Asked, summary)
	return m.Answer, m.Err
}

// recordingSink collects reported stages
type recordingSink struct {
	mu     sync.Mutex
	Stages []usecase.ExecutionStage
	Errors []string
}

func (s *recordingSink) ReportStage(ctx context.Context, stage usecase.ExecutionStage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Stages = append(s.Stages, stage)
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

func (s *recordingSink) Info(message string) {}

func (s *recordingSink) Error(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors = append(s.Errors, message)
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// pipeline wires every stage against in-memory collaborators
type pipeline struct {
	Chain     *mockChain
	Token     *mockToken
	Binder    *mockBinder
	Store     *memoryStore
	Resolver  *mockResolver
	Artifacts *mockArtifacts
	Confirmer *mockConfirmer
	Sink      *recordingSink
	Logs      *bytes.Buffer

	DeployToken *usecase.DeployToken
}

func newPipeline() *pipeline {
	p := &pipeline{
		Chain:     newMockChain(),
		Token:     newMockToken(testTreasury),
		Store:     newMemoryStore(),
		Artifacts: &mockArtifacts{},
		Confirmer: &mockConfirmer{Answer: true},
		Sink:      &recordingSink{},
	}
	p.Binder = &mockBinder{Token: p.Token}
	p.Resolver = &mockResolver{Networks: map[string]*config.Network{
		"sepolia": {Name: "sepolia", RPCURL: "https://rpc.sepolia.example", ChainID: 11155111, Configured: true},
	}}

	var log *slog.Logger
	log, p.Logs = newTestLogger()

	p.DeployToken = usecase.NewDeployToken(
		usecase.NewValidateConfiguration(),
		p.Artifacts,
		p.Resolver,
		usecase.NewExecuteDeployment(p.Chain, p.Confirmer, p.Sink, log),
		usecase.NewVerifyState(p.Binder, fixedClock, p.Sink, log),
		usecase.NewPersistRecord(p.Store, fixedClock, p.Sink, log),
		p.Sink,
		log,
	)
	return p
}

func validConfig() models.DeploymentConfiguration {
	return models.DeploymentConfiguration{
		TreasuryAddress: testTreasury,
		NetworkName:     "sepolia",
		ArtifactPath:    "artifacts/ArclaraToken.json",
	}
}

var errBoom = errors.New("boom")
