package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Mohsinsiddi/w3tokens/internal/config"
	"github.com/Mohsinsiddi/w3tokens/internal/contract"
	"github.com/Mohsinsiddi/w3tokens/internal/ethconnect"
	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	poolAddr  = "0x1111111111111111111111111111111111111111"
	aliceAddr = "0x2222222222222222222222222222222222222222"
	bobAddr   = "0x3333333333333333333333333333333333333333"
	factory   = "0x4444444444444444444444444444444444444444"
)

type sentTx struct {
	From   string
	To     string
	Method contract.ABIEntry
	Params []any
	ID     string
}

type fakeGateway struct {
	sent     []sentTx
	queries  []string
	output   json.RawMessage
	subs     []ethconnect.Subscription
	created  []ethconnect.Subscription
	sendErr  error
	streamID string
}

func (g *fakeGateway) SendTransaction(_ context.Context, from, to string, method contract.ABIEntry, params []any, id string) (*ethconnect.AsyncResponse, error) {
	if g.sendErr != nil {
		return nil, g.sendErr
	}
	if id == "" {
		id = "generated"
	}
	g.sent = append(g.sent, sentTx{From: from, To: to, Method: method, Params: params, ID: id})
	return &ethconnect.AsyncResponse{Sent: true, ID: id}, nil
}

func (g *fakeGateway) Query(_ context.Context, to string, method contract.ABIEntry, _ []any) (*ethconnect.QueryResponse, error) {
	g.queries = append(g.queries, method.Name+"@"+to)
	return &ethconnect.QueryResponse{Output: g.output}, nil
}

func (g *fakeGateway) EnsureEventStream(_ context.Context, name, topic string, batchSize int) (*ethconnect.EventStream, error) {
	if g.streamID == "" {
		g.streamID = "es-1"
	}
	return &ethconnect.EventStream{ID: g.streamID, Name: name, BatchSize: batchSize, WebSocket: ethconnect.WebSocketConfig{Topic: topic}}, nil
}

func (g *fakeGateway) GetSubscriptions(context.Context) ([]ethconnect.Subscription, error) {
	return append(append([]ethconnect.Subscription(nil), g.subs...), g.created...), nil
}

func (g *fakeGateway) CreateSubscription(_ context.Context, streamID, name, address string, event contract.ABIEntry, fromBlock string) (*ethconnect.Subscription, error) {
	sub := ethconnect.Subscription{ID: "sb-" + name, Name: name, Stream: streamID, Address: address, FromBlock: fromBlock, Event: &event}
	g.created = append(g.created, sub)
	return &sub, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Events:        config.Events{Stream: "token", Topic: "token", FromBlock: "0", BatchSize: 50},
		DefaultSigner: aliceAddr,
	}
}

func newTestService(t *testing.T) (*Service, *fakeGateway) {
	t.Helper()
	gw := &fakeGateway{}
	svc := New(gw, testConfig())
	require.NoError(t, svc.Init(context.Background()))
	return svc, gw
}

func createPool(t *testing.T, svc *Service, typ tokens.TokenType, withData *bool) string {
	t.Helper()
	res, err := svc.CreatePool(context.Background(), CreatePoolRequest{
		Type:   typ,
		Config: PoolConfig{Address: poolAddr, WithData: withData},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Pool)
	return res.Pool.PoolLocator
}

func boolPtr(b bool) *bool { return &b }

func TestCreatePoolWithAddress(t *testing.T) {
	svc, gw := newTestService(t)

	res, err := svc.CreatePool(context.Background(), CreatePoolRequest{
		Type:   tokens.TokenTypeFungible,
		Signer: aliceAddr,
		Data:   "pool-1",
		Config: PoolConfig{Address: "0x123456"},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Pool)
	assert.Empty(t, res.ID)
	assert.Empty(t, gw.sent, "no transaction for an existing contract")

	pool := res.Pool
	assert.Equal(t, "ERC20", pool.Standard)
	assert.Equal(t, "pool-1", pool.Data)
	assert.Equal(t, PoolInfo{Address: "0x123456", Schema: tokens.SchemaERC20WithData}, pool.Info)

	got, ok := tokens.UnpackPoolLocator(pool.PoolLocator).Valid()
	require.True(t, ok)
	assert.Equal(t, tokens.PoolLocator{Address: "0x123456", Schema: tokens.SchemaERC20WithData, Type: tokens.TokenTypeFungible}, got)
}

func TestCreatePoolSchemaSelection(t *testing.T) {
	svc, _ := newTestService(t)
	tests := []struct {
		typ      tokens.TokenType
		withData *bool
		want     tokens.Schema
	}{
		{tokens.TokenTypeFungible, nil, tokens.SchemaERC20WithData},
		{tokens.TokenTypeFungible, boolPtr(false), tokens.SchemaERC20NoData},
		{tokens.TokenTypeNonFungible, nil, tokens.SchemaERC721WithData},
		{tokens.TokenTypeNonFungible, boolPtr(false), tokens.SchemaERC721NoData},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			locator := createPool(t, svc, tt.typ, tt.withData)
			pool, ok := tokens.UnpackPoolLocator(locator).Valid()
			require.True(t, ok)
			assert.Equal(t, tt.want, pool.Schema)
			assert.Equal(t, tt.typ, pool.Type)
		})
	}
}

func TestCreatePoolInvalidType(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreatePool(context.Background(), CreatePoolRequest{Type: "semifungible", Config: PoolConfig{Address: poolAddr}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.ErrorIs(t, err, tokens.ErrInvalidTokenType)
}

func TestCreatePoolWithoutAddressNeedsFactory(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreatePool(context.Background(), CreatePoolRequest{Type: tokens.TokenTypeFungible})
	assert.ErrorIs(t, err, ErrFactoryNotConfigured)
}

func TestCreatePoolThroughFactory(t *testing.T) {
	gw := &fakeGateway{}
	cfg := testConfig()
	cfg.Factory = factory
	svc := New(gw, cfg)
	require.NoError(t, svc.Init(context.Background()))

	require.Len(t, gw.created, 1)
	assert.Equal(t, "token:"+factory+":TokenPoolCreation", gw.created[0].Name)
	assert.Equal(t, factory, gw.created[0].Address)

	res, err := svc.CreatePool(context.Background(), CreatePoolRequest{
		Type:      tokens.TokenTypeNonFungible,
		RequestID: "req-1",
		Name:      "Kitties",
		Symbol:    "KIT",
		Data:      "hello",
	})
	require.NoError(t, err)
	assert.Nil(t, res.Pool)
	assert.Equal(t, "req-1", res.ID)

	require.Len(t, gw.sent, 1)
	tx := gw.sent[0]
	assert.Equal(t, factory, tx.To)
	assert.Equal(t, aliceAddr, tx.From)
	assert.Equal(t, "createWithData", tx.Method.Name)
	assert.Equal(t, []any{"Kitties", "KIT", false, "0x68656c6c6f"}, tx.Params)

	res, err = svc.CreatePool(context.Background(), CreatePoolRequest{
		Type:   tokens.TokenTypeFungible,
		Name:   "Coin",
		Symbol: "C",
		Config: PoolConfig{WithData: boolPtr(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, "generated", res.ID)
	assert.Equal(t, "create", gw.sent[1].Method.Name)
	assert.Equal(t, []any{"Coin", "C", true}, gw.sent[1].Params)
}

func TestInitReusesFactorySubscription(t *testing.T) {
	gw := &fakeGateway{subs: []ethconnect.Subscription{{ID: "sb-0", Name: "token:" + factory + ":TokenPoolCreation"}}}
	cfg := testConfig()
	cfg.Factory = factory
	require.NoError(t, New(gw, cfg).Init(context.Background()))
	assert.Empty(t, gw.created)
}

func TestActivatePool(t *testing.T) {
	svc, gw := newTestService(t)
	locator := createPool(t, svc, tokens.TokenTypeNonFungible, nil)

	pool, err := svc.ActivatePool(context.Background(), ActivatePoolRequest{PoolLocator: locator})
	require.NoError(t, err)
	assert.Equal(t, "ERC721", pool.Standard)
	assert.Equal(t, locator, pool.PoolLocator)

	require.Len(t, gw.created, 2)
	assert.Equal(t, "token:"+locator+":Transfer", gw.created[0].Name)
	assert.Equal(t, "token:"+locator+":ApprovalForAll", gw.created[1].Name)
	for _, sub := range gw.created {
		assert.Equal(t, "es-1", sub.Stream)
		assert.Equal(t, poolAddr, sub.Address)
		assert.Equal(t, "0", sub.FromBlock)
		require.NotNil(t, sub.Event)
	}

	// the subscription names must round-trip to this pool
	for _, sub := range gw.created {
		name := tokens.UnpackSubscriptionName("token", sub.Name)
		assert.True(t, name.Matched())
		assert.Equal(t, locator, name.PoolLocator)
		assert.Equal(t, sub.Event.Name, name.Event)
	}

	// activating again creates nothing new
	_, err = svc.ActivatePool(context.Background(), ActivatePoolRequest{PoolLocator: locator})
	require.NoError(t, err)
	assert.Len(t, gw.created, 2)
}

func TestActivatePoolFungibleEvents(t *testing.T) {
	svc, gw := newTestService(t)
	locator := createPool(t, svc, tokens.TokenTypeFungible, boolPtr(false))

	_, err := svc.ActivatePool(context.Background(), ActivatePoolRequest{PoolLocator: locator})
	require.NoError(t, err)
	require.Len(t, gw.created, 2)
	assert.Equal(t, "Transfer", gw.created[0].Event.Name)
	assert.Equal(t, "Approval", gw.created[1].Event.Name)
}

func TestActivatePoolBeforeInit(t *testing.T) {
	svc := New(&fakeGateway{}, testConfig())
	locator := tokens.PackPoolLocator(tokens.PoolLocator{Address: poolAddr, Schema: tokens.SchemaERC20WithData, Type: tokens.TokenTypeFungible})
	_, err := svc.ActivatePool(context.Background(), ActivatePoolRequest{PoolLocator: locator})
	assert.ErrorIs(t, err, ErrNotActivated)
}

func TestInvalidPoolLocator(t *testing.T) {
	svc, gw := newTestService(t)
	tests := []struct {
		name    string
		locator string
		want    error
	}{
		{"empty", "", ErrInvalidRequest},
		{"missing type", "address=" + poolAddr + "&schema=ERC20WithData", ErrInvalidPoolLocator},
		{"garbage", "%zz", ErrInvalidPoolLocator},
		{"schema type mismatch", "address=" + poolAddr + "&schema=ERC721NoData&type=fungible", ErrInvalidPoolLocator},
		{"unknown schema", "address=" + poolAddr + "&schema=ERC1155&type=fungible", ErrInvalidPoolLocator},
		{"empty address", "address=&schema=ERC20WithData&type=fungible", ErrInvalidPoolLocator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Mint(context.Background(), MintRequest{PoolLocator: tt.locator, To: bobAddr, Amount: "1"})
			assert.ErrorIs(t, err, tt.want)
			_, err = svc.ActivatePool(context.Background(), ActivatePoolRequest{PoolLocator: tt.locator})
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, gw.sent)
	assert.Empty(t, gw.created)
}

func TestLegacyLocatorAccepted(t *testing.T) {
	svc, gw := newTestService(t)
	legacy := "address=" + poolAddr + "&standard=ERC20NoData&type=fungible"

	_, err := svc.Mint(context.Background(), MintRequest{PoolLocator: legacy, To: bobAddr, Amount: "5"})
	require.NoError(t, err)
	require.Len(t, gw.sent, 1)
	assert.Equal(t, "mint", gw.sent[0].Method.Name)
	assert.Equal(t, []any{bobAddr, "5"}, gw.sent[0].Params)
}

func TestCreatePoolThenMint(t *testing.T) {
	svc, gw := newTestService(t)
	locator := createPool(t, svc, tokens.TokenTypeFungible, nil)

	id, err := svc.Mint(context.Background(), MintRequest{PoolLocator: locator, To: bobAddr, Amount: "20"})
	require.NoError(t, err)
	assert.Equal(t, "generated", id)

	require.Len(t, gw.sent, 1)
	tx := gw.sent[0]
	assert.Equal(t, poolAddr, tx.To)
	assert.Equal(t, aliceAddr, tx.From)
	assert.Equal(t, "mintWithData", tx.Method.Name)
	assert.Equal(t, []any{bobAddr, "20", "0x00"}, tx.Params)
}

func TestOperationsMethodsAndArguments(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	erc20 := createPool(t, svc, tokens.TokenTypeFungible, nil)
	erc20NoData := createPool(t, svc, tokens.TokenTypeFungible, boolPtr(false))
	erc721 := createPool(t, svc, tokens.TokenTypeNonFungible, nil)
	erc721NoData := createPool(t, svc, tokens.TokenTypeNonFungible, boolPtr(false))

	tests := []struct {
		name   string
		run    func() (string, error)
		method string
		params []any
	}{
		{
			"erc20 transfer",
			func() (string, error) {
				return svc.Transfer(ctx, TransferRequest{PoolLocator: erc20, From: aliceAddr, To: bobAddr, Amount: "3", Data: "x"})
			},
			"transferWithData", []any{aliceAddr, bobAddr, "3", "0x78"},
		},
		{
			"erc20 no-data burn",
			func() (string, error) {
				return svc.Burn(ctx, BurnRequest{PoolLocator: erc20NoData, From: aliceAddr, Amount: "4"})
			},
			"burnFrom", []any{aliceAddr, "4"},
		},
		{
			"erc20 approve unlimited",
			func() (string, error) {
				return svc.Approval(ctx, ApprovalRequest{PoolLocator: erc20, Operator: bobAddr, Approved: true})
			},
			"approveWithData", []any{bobAddr, "115792089237316195423570985008687907853269984665640564039457584007913129639935", "0x00"},
		},
		{
			"erc20 approve with allowance",
			func() (string, error) {
				return svc.Approval(ctx, ApprovalRequest{PoolLocator: erc20NoData, Operator: bobAddr, Approved: true, Config: ApprovalConfig{Allowance: "10"}})
			},
			"approve", []any{bobAddr, "10"},
		},
		{
			"erc20 revoke",
			func() (string, error) {
				return svc.Approval(ctx, ApprovalRequest{PoolLocator: erc20NoData, Operator: bobAddr, Config: ApprovalConfig{Allowance: "10"}})
			},
			"approve", []any{bobAddr, "0"},
		},
		{
			"erc721 mint",
			func() (string, error) {
				return svc.Mint(ctx, MintRequest{PoolLocator: erc721, To: bobAddr, TokenIndex: "7", Amount: "1"})
			},
			"mintWithData", []any{bobAddr, "7", "0x00"},
		},
		{
			"erc721 no-data transfer",
			func() (string, error) {
				return svc.Transfer(ctx, TransferRequest{PoolLocator: erc721NoData, From: aliceAddr, To: bobAddr, TokenIndex: "7"})
			},
			"safeTransferFrom", []any{aliceAddr, bobAddr, "7"},
		},
		{
			"erc721 no-data burn",
			func() (string, error) {
				return svc.Burn(ctx, BurnRequest{PoolLocator: erc721NoData, From: aliceAddr, TokenIndex: "7"})
			},
			"burn", []any{"7"},
		},
		{
			"erc721 approval for all",
			func() (string, error) {
				return svc.Approval(ctx, ApprovalRequest{PoolLocator: erc721, Operator: bobAddr, Approved: true, Data: "ok"})
			},
			"setApprovalForAllWithData", []any{bobAddr, true, "0x6f6b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(gw.sent)
			_, err := tt.run()
			require.NoError(t, err)
			require.Len(t, gw.sent, before+1)
			tx := gw.sent[before]
			assert.Equal(t, tt.method, tx.Method.Name)
			assert.Equal(t, tt.params, tx.Params)
		})
	}
}

func TestOperationValidation(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()
	erc20 := createPool(t, svc, tokens.TokenTypeFungible, nil)
	erc721 := createPool(t, svc, tokens.TokenTypeNonFungible, nil)

	tests := []struct {
		name string
		run  func() error
	}{
		{"erc20 mint without amount", func() error {
			_, err := svc.Mint(ctx, MintRequest{PoolLocator: erc20, To: bobAddr})
			return err
		}},
		{"erc20 mint bad amount", func() error {
			_, err := svc.Mint(ctx, MintRequest{PoolLocator: erc20, To: bobAddr, Amount: "lots"})
			return err
		}},
		{"erc20 mint bad address", func() error {
			_, err := svc.Mint(ctx, MintRequest{PoolLocator: erc20, To: "0x123", Amount: "1"})
			return err
		}},
		{"erc721 mint without token index", func() error {
			_, err := svc.Mint(ctx, MintRequest{PoolLocator: erc721, To: bobAddr})
			return err
		}},
		{"erc721 transfer of several", func() error {
			_, err := svc.Transfer(ctx, TransferRequest{PoolLocator: erc721, From: aliceAddr, To: bobAddr, TokenIndex: "1", Amount: "2"})
			return err
		}},
		{"approval without operator", func() error {
			_, err := svc.Approval(ctx, ApprovalRequest{PoolLocator: erc721, Approved: true})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), ErrInvalidRequest)
		})
	}
	assert.Empty(t, gw.sent)
}

func TestSignerRequired(t *testing.T) {
	gw := &fakeGateway{}
	cfg := testConfig()
	cfg.DefaultSigner = ""
	svc := New(gw, cfg)
	locator := tokens.PackPoolLocator(tokens.PoolLocator{Address: poolAddr, Schema: tokens.SchemaERC20NoData, Type: tokens.TokenTypeFungible})

	_, err := svc.Mint(context.Background(), MintRequest{PoolLocator: locator, To: bobAddr, Amount: "1"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Mint(context.Background(), MintRequest{PoolLocator: locator, Signer: bobAddr, To: bobAddr, Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, bobAddr, gw.sent[0].From)
}

func TestGatewayErrorPropagates(t *testing.T) {
	svc, gw := newTestService(t)
	gw.sendErr = &ethconnect.GatewayError{Status: 500, Message: "boom"}
	locator := createPool(t, svc, tokens.TokenTypeFungible, nil)

	_, err := svc.Mint(context.Background(), MintRequest{PoolLocator: locator, To: bobAddr, Amount: "1"})
	var gwErr *ethconnect.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, 500, gwErr.Status)
}

func TestBalanceOf(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	erc20 := createPool(t, svc, tokens.TokenTypeFungible, nil)
	gw.output = json.RawMessage(`"42"`)
	bal, err := svc.BalanceOf(ctx, BalanceRequest{PoolLocator: erc20, Account: bobAddr})
	require.NoError(t, err)
	assert.Equal(t, "42", bal.Balance)

	gw.output = json.RawMessage(`17`)
	bal, err = svc.BalanceOf(ctx, BalanceRequest{PoolLocator: erc20, Account: bobAddr})
	require.NoError(t, err)
	assert.Equal(t, "17", bal.Balance)

	erc721 := createPool(t, svc, tokens.TokenTypeNonFungible, nil)
	gw.output = json.RawMessage(`"0x3333333333333333333333333333333333333333"`)
	bal, err = svc.BalanceOf(ctx, BalanceRequest{PoolLocator: erc721, Account: bobAddr, TokenIndex: "9"})
	require.NoError(t, err)
	assert.Equal(t, "1", bal.Balance)

	bal, err = svc.BalanceOf(ctx, BalanceRequest{PoolLocator: erc721, Account: aliceAddr, TokenIndex: "9"})
	require.NoError(t, err)
	assert.Equal(t, "0", bal.Balance)

	assert.Equal(t, []string{
		"balanceOf@" + poolAddr,
		"balanceOf@" + poolAddr,
		"ownerOf@" + poolAddr,
		"ownerOf@" + poolAddr,
	}, gw.queries)

	_, err = svc.BalanceOf(ctx, BalanceRequest{PoolLocator: erc20})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
