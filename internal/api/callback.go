package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spacexdash/internal/callback"
	"spacexdash/internal/model"
	"spacexdash/internal/session"
)

// CallbackRequest 控件变更请求
type CallbackRequest struct {
	SessionID string          `json:"sessionId"`
	Control   string          `json:"control"`
	Value     json.RawMessage `json:"value"`
	// State 客户端当前的完整选择；会话过期后用于重建
	State *model.Selection `json:"state,omitempty"`
}

// CallbackResponse 控件变更结果，outputs 完整替换对应面板
type CallbackResponse struct {
	SessionID string                     `json:"sessionId"`
	Revision  uint64                     `json:"revision"`
	Selection model.Selection            `json:"selection"`
	Outputs   map[string]callback.Output `json:"outputs"`
}

// InitialCallback 首次渲染：按需创建会话并计算全部面板
// POST /api/callback/initial
func (h *Handler) InitialCallback(c *gin.Context) {
	var req CallbackRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
			return
		}
	}

	sess, created := h.sessions.GetOrCreate(req.SessionID, h.seed(req.State))
	if created {
		h.logger.Debug("session created", "session", sess.ID())
	}

	var outputs map[string]callback.Output
	snap, err := sess.Update(nil, func(sel model.Selection, _ uint64) error {
		var err error
		outputs, err = h.dispatcher.DispatchAll(sel)
		return err
	})
	if err != nil {
		h.logger.Error("initial render failed", "session", sess.ID(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "渲染失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, newCallbackResponse(snap, outputs))
}

// Callback 单个控件变更：更新会话选择并重算绑定的面板
// POST /api/callback
func (h *Handler) Callback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}
	if req.Control == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 control"})
		return
	}

	sess, created := h.sessions.GetOrCreate(req.SessionID, h.seed(req.State))
	if created {
		h.logger.Debug("session created", "session", sess.ID(), "requested", req.SessionID)
	}

	var outputs map[string]callback.Output
	snap, err := sess.Update(
		func(sel *model.Selection) error {
			return callback.ApplyControl(sel, req.Control, req.Value)
		},
		func(sel model.Selection, rev uint64) error {
			var err error
			outputs, err = h.dispatcher.Dispatch(req.Control, sel)
			h.logger.Debug("callback dispatched", "session", sess.ID(), "control", req.Control, "revision", rev)
			return err
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, callback.ErrUnknownControl), errors.Is(err, callback.ErrInvalidValue):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("callback failed", "session", sess.ID(), "control", req.Control, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "渲染失败: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, newCallbackResponse(snap, outputs))
}

func (h *Handler) seed(state *model.Selection) model.Selection {
	if state == nil {
		return h.store.InitialSelection()
	}
	sel := *state
	if sel.Site == "" {
		sel.Site = model.AllSites
	}
	sel.Payload = sel.Payload.Normalize()
	return sel
}

func newCallbackResponse(snap session.Snapshot, outputs map[string]callback.Output) CallbackResponse {
	return CallbackResponse{
		SessionID: snap.ID,
		Revision:  snap.Revision,
		Selection: snap.Selection,
		Outputs:   outputs,
	}
}
