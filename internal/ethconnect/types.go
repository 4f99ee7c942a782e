package ethconnect

import (
	"encoding/json"

	"github.com/Mohsinsiddi/w3tokens/internal/contract"
)

// Message types understood by the gateway.
const (
	MsgSendTransaction = "SendTransaction"
	MsgQuery           = "Query"

	// Receipt header types.
	ReceiptSuccess = "TransactionSuccess"
	ReceiptFailure = "TransactionFailure"
)

type requestHeaders struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

type transactionRequest struct {
	Headers requestHeaders    `json:"headers"`
	From    string            `json:"from,omitempty"`
	To      string            `json:"to"`
	Method  contract.ABIEntry `json:"method"`
	Params  []any             `json:"params"`
}

// AsyncResponse is the gateway's acknowledgement of a submitted transaction.
type AsyncResponse struct {
	Sent bool   `json:"sent"`
	ID   string `json:"id"`
}

// QueryResponse is the result of a read-only call.
type QueryResponse struct {
	Output json.RawMessage `json:"output"`
}

// EventStream is a gateway-side delivery channel for subscribed events.
type EventStream struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name"`
	ErrorHandling  string          `json:"errorHandling"`
	BatchSize      int             `json:"batchSize"`
	BatchTimeoutMS int             `json:"batchTimeoutMS"`
	Type           string          `json:"type"`
	WebSocket      WebSocketConfig `json:"websocket"`
	Timestamps     bool            `json:"timestamps"`
}

// WebSocketConfig names the topic a websocket event stream publishes on.
type WebSocketConfig struct {
	Topic string `json:"topic"`
}

// Subscription binds a contract event to an event stream.
type Subscription struct {
	ID        string             `json:"id,omitempty"`
	Name      string             `json:"name"`
	Stream    string             `json:"stream"`
	Address   string             `json:"address,omitempty"`
	FromBlock string             `json:"fromBlock,omitempty"`
	Event     *contract.ABIEntry `json:"event,omitempty"`
}

// Event is one entry of a websocket event batch.
type Event struct {
	SubID            string         `json:"subId"`
	Signature        string         `json:"signature"`
	Address          string         `json:"address"`
	Data             map[string]any `json:"data"`
	BlockNumber      string         `json:"blockNumber"`
	TransactionIndex string         `json:"transactionIndex"`
	TransactionHash  string         `json:"transactionHash"`
	LogIndex         string         `json:"logIndex"`
	Timestamp        string         `json:"timestamp,omitempty"`
	InputMethod      string         `json:"inputMethod,omitempty"`
	InputArgs        map[string]any `json:"inputArgs,omitempty"`
	InputSigner      string         `json:"inputSigner,omitempty"`
}

// Receipt is a transaction outcome pushed on the event stream topic.
type Receipt struct {
	Headers struct {
		RequestID string `json:"requestId"`
		Type      string `json:"type"`
	} `json:"headers"`
	TransactionHash string `json:"transactionHash,omitempty"`
	ErrorMessage    string `json:"errorMessage,omitempty"`
}
