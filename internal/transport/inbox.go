package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/zkmesh/rollupcore-backend/internal/service/operator"
)

// Inbox buffers block proposals and proofs posted by the off-chain proposer
// and prover. The committer and verifier drain it through the source
// interfaces.
type Inbox struct {
	mu        sync.RWMutex
	proposals map[uint32]operator.BlockProposal
	proofs    map[uint32][]byte
	logger    *zap.Logger
}

// NewInbox returns an empty Inbox.
func NewInbox(logger *zap.Logger) *Inbox {
	return &Inbox{
		proposals: make(map[uint32]operator.BlockProposal),
		proofs:    make(map[uint32][]byte),
		logger:    logger,
	}
}

// Register mounts the handler's routes on mux.
func (i *Inbox) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/proposals", i.postProposal)
	mux.HandleFunc("POST /v1/proofs", i.postProof)
}

// FetchProposal returns the buffered proposal for blockNumber, or (nil, nil)
// when none has arrived yet.
func (i *Inbox) FetchProposal(_ context.Context, blockNumber uint32) (*operator.BlockProposal, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	proposal, ok := i.proposals[blockNumber]
	if !ok {
		return nil, nil
	}
	out := proposal
	out.PublicData = append([]byte(nil), proposal.PublicData...)
	return &out, nil
}

// FetchProof returns the buffered proof for blockNumber, or (nil, nil) when
// none has arrived yet. The commitment is checked downstream by the proof
// oracle, not here.
func (i *Inbox) FetchProof(_ context.Context, blockNumber uint32, _ common.Hash) ([]byte, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	proof, ok := i.proofs[blockNumber]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), proof...), nil
}

// Drop removes buffered entries up to and including blockNumber. Called
// after a block is verified to bound memory.
func (i *Inbox) Drop(blockNumber uint32) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for number := range i.proposals {
		if number <= blockNumber {
			delete(i.proposals, number)
		}
	}
	for number := range i.proofs {
		if number <= blockNumber {
			delete(i.proofs, number)
		}
	}
}

type proposalRequest struct {
	Number       uint32 `json:"number"`
	FeeAccount   uint32 `json:"fee_account"`
	NewStateRoot string `json:"new_state_root"`
	PublicData   string `json:"public_data"`
}

func (i *Inbox) postProposal(w http.ResponseWriter, r *http.Request) {
	var req proposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, i.logger, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Number == 0 {
		writeError(w, i.logger, http.StatusBadRequest, "block number must be positive")
		return
	}

	publicData, err := hexutil.Decode(req.PublicData)
	if err != nil {
		writeError(w, i.logger, http.StatusBadRequest, "invalid public data hex")
		return
	}

	i.mu.Lock()
	i.proposals[req.Number] = operator.BlockProposal{
		Number:       req.Number,
		FeeAccount:   req.FeeAccount,
		NewStateRoot: common.HexToHash(req.NewStateRoot),
		PublicData:   publicData,
	}
	i.mu.Unlock()

	i.logger.Info("proposal received",
		zap.Uint32("number", req.Number),
		zap.Int("public_data_len", len(publicData)))

	writeJSON(w, i.logger, http.StatusAccepted, map[string]uint32{"number": req.Number})
}

type proofRequest struct {
	BlockNumber uint32 `json:"block_number"`
	Proof       string `json:"proof"`
}

func (i *Inbox) postProof(w http.ResponseWriter, r *http.Request) {
	var req proofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, i.logger, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.BlockNumber == 0 {
		writeError(w, i.logger, http.StatusBadRequest, "block number must be positive")
		return
	}

	proof, err := hexutil.Decode(req.Proof)
	if err != nil {
		writeError(w, i.logger, http.StatusBadRequest, "invalid proof hex")
		return
	}

	i.mu.Lock()
	i.proofs[req.BlockNumber] = proof
	i.mu.Unlock()

	i.logger.Info("proof received", zap.Uint32("block_number", req.BlockNumber))

	writeJSON(w, i.logger, http.StatusAccepted, map[string]uint32{"block_number": req.BlockNumber})
}
