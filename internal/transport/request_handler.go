package transport

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/codec"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/state"
	"github.com/zkmesh/rollupcore-backend/internal/service/operator"
)

// RequestHandler ingests user operations: priority requests entering the
// queue and direct withdrawals of unlocked balances.
type RequestHandler struct {
	state  *state.State
	chain  operator.ChainHeight
	repo   operator.Repository
	events operator.EventSink
	logger *zap.Logger
}

// NewRequestHandler returns a RequestHandler instance.
func NewRequestHandler(
	st *state.State,
	chain operator.ChainHeight,
	repo operator.Repository,
	events operator.EventSink,
	logger *zap.Logger,
) *RequestHandler {
	return &RequestHandler{state: st, chain: chain, repo: repo, events: events, logger: logger}
}

// Register mounts the handler's routes on mux.
func (h *RequestHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/priority-requests", h.postPriorityRequest)
	mux.HandleFunc("POST /v1/withdrawals", h.postWithdrawal)
}

type priorityRequestBody struct {
	OpType    string `json:"op_type"`
	AccountID uint32 `json:"account_id"`
	TokenID   uint16 `json:"token_id"`
	Amount    string `json:"amount"`
	Owner     string `json:"owner"`
	Fee       string `json:"fee"`
}

type priorityRequestCreated struct {
	SerialID        uint64 `json:"serial_id"`
	ExpirationBlock uint64 `json:"expiration_block"`
}

func (h *RequestHandler) postPriorityRequest(w http.ResponseWriter, r *http.Request) {
	var body priorityRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid json body")
		return
	}
	if !common.IsHexAddress(body.Owner) {
		writeError(w, h.logger, http.StatusBadRequest, "invalid owner address")
		return
	}
	owner := common.HexToAddress(body.Owner)

	var (
		opType  model.OpType
		pubData []byte
		err     error
	)
	switch body.OpType {
	case "deposit":
		amount, ok := parseAmount(body.Amount)
		if !ok {
			writeError(w, h.logger, http.StatusBadRequest, "invalid amount")
			return
		}
		opType = model.OpDeposit
		pubData, err = codec.DepositRequestPubData(body.TokenID, amount, owner)
	case "full_exit":
		opType = model.OpFullExit
		pubData, err = codec.FullExitRequestPubData(body.AccountID, owner, body.TokenID)
	default:
		writeError(w, h.logger, http.StatusBadRequest, "op_type must be deposit or full_exit")
		return
	}
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	fee := new(big.Int)
	if body.Fee != "" {
		parsed, ok := parseAmount(body.Fee)
		if !ok {
			writeError(w, h.logger, http.StatusBadRequest, "invalid fee")
			return
		}
		fee = parsed
	}

	height, err := h.chain.BlockNumber(r.Context())
	if err != nil {
		h.logger.Error("chain height", zap.Error(err))
		writeError(w, h.logger, http.StatusServiceUnavailable, "chain height unavailable")
		return
	}

	serialID, events, err := h.state.AddPriorityRequest(opType, pubData, fee, height)
	h.emitEvents(r, events)
	if err != nil {
		if errors.Is(err, state.ErrExodusActive) {
			writeError(w, h.logger, http.StatusConflict, err.Error())
			return
		}
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	request := model.PriorityRequest{
		SerialID:        serialID,
		Type:            opType,
		PubData:         pubData,
		Fee:             fee,
		ExpirationBlock: expirationFromEvents(events),
	}
	if err := h.repo.InsertPriorityRequests(r.Context(), []model.PriorityRequest{request}); err != nil {
		h.logger.Error("persist priority request",
			zap.Uint64("serial_id", serialID),
			zap.Error(err))
	}

	h.logger.Info("priority request queued",
		zap.Uint64("serial_id", serialID),
		zap.String("op_type", opType.String()))

	writeJSON(w, h.logger, http.StatusCreated, priorityRequestCreated{
		SerialID:        serialID,
		ExpirationBlock: request.ExpirationBlock,
	})
}

type withdrawalBody struct {
	Owner   string `json:"owner"`
	TokenID uint16 `json:"token_id"`
	Amount  string `json:"amount"`
}

func (h *RequestHandler) postWithdrawal(w http.ResponseWriter, r *http.Request) {
	var body withdrawalBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid json body")
		return
	}
	if !common.IsHexAddress(body.Owner) {
		writeError(w, h.logger, http.StatusBadRequest, "invalid owner address")
		return
	}
	amount, ok := parseAmount(body.Amount)
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "invalid amount")
		return
	}
	owner := common.HexToAddress(body.Owner)

	events, err := h.state.Withdraw(owner, body.TokenID, amount)
	h.emitEvents(r, events)
	if err != nil {
		if errors.Is(err, state.ErrInsufficientBalance) {
			writeError(w, h.logger, http.StatusConflict, err.Error())
			return
		}
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	balance := model.PendingBalance{
		Owner:          owner,
		TokenID:        body.TokenID,
		Amount:         h.state.BalanceToWithdraw(owner, body.TokenID),
		UpdatedAtBlock: h.state.TotalBlocksVerified(),
	}
	if err := h.repo.InsertPendingBalances(r.Context(), []model.PendingBalance{balance}); err != nil {
		h.logger.Error("persist balance after withdrawal",
			zap.String("owner", owner.Hex()),
			zap.Error(err))
	}

	writeJSON(w, h.logger, http.StatusOK, balanceResponse{
		Owner:   owner.Hex(),
		TokenID: body.TokenID,
		Amount:  balance.Amount.String(),
	})
}

func (h *RequestHandler) emitEvents(r *http.Request, events []model.Event) {
	for _, event := range events {
		if err := h.events.Add(r.Context(), event); err != nil {
			h.logger.Error("event not journaled",
				zap.String("type", string(event.Type)),
				zap.Error(err))
		}
	}
}

func parseAmount(raw string) (*big.Int, bool) {
	if raw == "" {
		return nil, false
	}
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Sign() < 0 {
		return nil, false
	}
	return amount, true
}

func expirationFromEvents(events []model.Event) uint64 {
	for _, event := range events {
		if event.Type == model.EventNewPriorityRequest {
			return event.ExpirationBlock
		}
	}
	return 0
}
