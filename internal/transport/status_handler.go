package transport

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/state"
)

// StatusHandler serves read-only views over the in-memory rollup state.
type StatusHandler struct {
	state   *state.State
	network model.Network
	logger  *zap.Logger
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(st *state.State, network model.Network, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{state: st, network: network, logger: logger}
}

// Register mounts the handler's routes on mux.
func (h *StatusHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/status", h.status)
	mux.HandleFunc("GET /v1/blocks/{number}", h.blockByNumber)
	mux.HandleFunc("GET /v1/balances/{owner}/{token}", h.balance)
	mux.HandleFunc("GET /v1/priority-requests", h.priorityRequests)
}

type statusResponse struct {
	Network                   string `json:"network"`
	TotalBlocksCommitted      uint32 `json:"total_blocks_committed"`
	TotalBlocksVerified       uint32 `json:"total_blocks_verified"`
	TotalOpenPriorityRequests uint64 `json:"total_open_priority_requests"`
	FirstPriorityRequestID    uint64 `json:"first_priority_request_id"`
	ExodusMode                bool   `json:"exodus_mode"`
}

func (h *StatusHandler) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, statusResponse{
		Network:                   string(h.network),
		TotalBlocksCommitted:      h.state.TotalBlocksCommitted(),
		TotalBlocksVerified:       h.state.TotalBlocksVerified(),
		TotalOpenPriorityRequests: h.state.TotalOpenPriorityRequests(),
		FirstPriorityRequestID:    h.state.FirstPriorityRequestID(),
		ExodusMode:                h.state.ExodusMode(),
	})
}

type blockResponse struct {
	Number              uint32 `json:"number"`
	FeeAccount          uint32 `json:"fee_account"`
	StateRoot           string `json:"state_root"`
	Commitment          string `json:"commitment"`
	OnchainOpsHash      string `json:"onchain_ops_hash"`
	PriorityOperations  uint64 `json:"priority_operations"`
	PublicData          string `json:"public_data"`
	CommittedAtEthBlock uint64 `json:"committed_at_eth_block"`
	Validator           string `json:"validator"`
	Status              string `json:"status"`
}

func (h *StatusHandler) blockByNumber(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseUint(r.PathValue("number"), 10, 32)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid block number")
		return
	}

	block, ok := h.state.BlockByNumber(uint32(number))
	if !ok {
		writeError(w, h.logger, http.StatusNotFound, "block not found")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, blockResponse{
		Number:              block.Number,
		FeeAccount:          block.FeeAccount,
		StateRoot:           block.StateRoot.Hex(),
		Commitment:          block.Commitment.Hex(),
		OnchainOpsHash:      block.OnchainOpsHash.Hex(),
		PriorityOperations:  block.PriorityOperations,
		PublicData:          hexutil.Encode(block.PublicData),
		CommittedAtEthBlock: block.CommittedAtEthBlock,
		Validator:           block.Validator.Hex(),
		Status:              string(block.Status),
	})
}

type balanceResponse struct {
	Owner   string `json:"owner"`
	TokenID uint16 `json:"token_id"`
	Amount  string `json:"amount"`
}

func (h *StatusHandler) balance(w http.ResponseWriter, r *http.Request) {
	rawOwner := r.PathValue("owner")
	if !common.IsHexAddress(rawOwner) {
		writeError(w, h.logger, http.StatusBadRequest, "invalid owner address")
		return
	}
	token, err := strconv.ParseUint(r.PathValue("token"), 10, 16)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid token id")
		return
	}

	owner := common.HexToAddress(rawOwner)
	amount := h.state.BalanceToWithdraw(owner, uint16(token))

	writeJSON(w, h.logger, http.StatusOK, balanceResponse{
		Owner:   owner.Hex(),
		TokenID: uint16(token),
		Amount:  amount.String(),
	})
}

type priorityRequestResponse struct {
	SerialID        uint64 `json:"serial_id"`
	OpType          string `json:"op_type"`
	PubData         string `json:"pub_data"`
	Fee             string `json:"fee"`
	ExpirationBlock uint64 `json:"expiration_block"`
}

func (h *StatusHandler) priorityRequests(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	requests := h.state.OpenPriorityRequests(limit)
	out := make([]priorityRequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, priorityRequestResponse{
			SerialID:        request.SerialID,
			OpType:          request.Type.String(),
			PubData:         hexutil.Encode(request.PubData),
			Fee:             request.Fee.String(),
			ExpirationBlock: request.ExpirationBlock,
		})
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}
