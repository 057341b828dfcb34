package api

import (
	"encoding/json"
	"net/http"

	"voting-poll/internal/platform/apperr"
	"voting-poll/internal/worker"
)

type createProposalRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// @Summary     Submit a proposal
// @Description Proposals from the poll owner start activated.
// @Tags        proposals
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id       path      int64                  true  "Poll ID"
// @Param       request  body      createProposalRequest  true  "Proposal"
// @Success     201      {object}  map[string]int64
// @Failure     400      {object}  map[string]string  "standard or inactive poll"
// @Failure     404      {object}  map[string]string  "poll not found"
// @Failure     429      {object}  map[string]string  "rate limited"
// @Router      /api/v1/polls/{id}/proposals [post]
func (h *Handler) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	pollID, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}

	var req createProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	caller := callerFromCtx(r)
	id, err := h.registry.CreateProposal(r.Context(), req.Name, req.Description, pollID, caller)
	if err != nil {
		errorResponse(w, err)
		return
	}

	worker.Publish(h.events, worker.Event{Kind: worker.ProposalCreated, PollID: pollID, ProposalID: id, Caller: caller})
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// @Summary     Activate a proposal
// @Tags        proposals
// @Security    BearerAuth
// @Param       id          path  int64  true  "Poll ID"
// @Param       proposalID  path  int64  true  "Proposal ID"
// @Success     204
// @Failure     400  {object}  map[string]string  "proposal not in poll"
// @Failure     403  {object}  map[string]string  "not the poll owner"
// @Failure     409  {object}  map[string]string  "already activated"
// @Router      /api/v1/polls/{id}/proposals/{proposalID}/activate [post]
func (h *Handler) handleActivateProposal(w http.ResponseWriter, r *http.Request) {
	pollID, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}
	proposalID, err := parseIDParam(r, "proposalID")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid proposal id", err))
		return
	}

	caller := callerFromCtx(r)
	if err := h.registry.ActivateProposal(r.Context(), proposalID, pollID, caller); err != nil {
		errorResponse(w, err)
		return
	}

	worker.Publish(h.events, worker.Event{Kind: worker.ProposalActivated, PollID: pollID, ProposalID: proposalID, Caller: caller})
	w.WriteHeader(http.StatusNoContent)
}

// @Summary     Get a proposal
// @Tags        proposals
// @Produce     json
// @Param       id   path      int64  true  "Proposal ID"
// @Success     200  {object}  poll.Proposal
// @Failure     404  {object}  map[string]string  "proposal not found"
// @Router      /api/v1/proposals/{id} [get]
func (h *Handler) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid proposal id", err))
		return
	}

	pr, err := h.registry.GetProposal(id)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pr)
}
