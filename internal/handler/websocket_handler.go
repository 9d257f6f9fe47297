package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const coachGreeting = "Hi! I'm your brain coach. Ask me anything about your training."

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleCoachConnection godoc
// @Summary      AI 코치 WebSocket 연결
// @Description  실시간 코치 대화를 위한 WebSocket 연결을 시작합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴을 사용하여 이 엔드포인트에 연결해야 합니다.
// @Description  인증은 HTTP Header가 아닌 **쿼리 파라미터('token')**를 통해 수행됩니다.
// @Description  텍스트 프레임 하나가 질문 하나이며, 답변은 텍스트 프레임으로 전송됩니다. 바이너리 프레임은 무시됩니다.
// @Tags         WebSocket (Coach)
// @Param        token    query     string  true  "로그인 시 발급받은 JWT 토큰"
// @Success      101      {string}  string  "101 Switching Protocols (WebSocket으로 프로토콜 전환 성공)"
// @Failure      401      {object}  handler.ErrorResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Router       /ws/coach [get]
func (h *Handler) HandleCoachConnection(c *gin.Context) {
	// 사용자 토큰 검증
	claims, err := h.tokens.ValidateToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	user, err := h.store.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// WebSocket 연결 업그레이드과 종료
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("failed to upgrade to websocket", "user_id", user.ID, "error", err)
		return
	}
	defer conn.Close()
	h.log.Info("coach websocket connected", "user_id", user.ID, "username", user.Username)

	// 초기 메시지 전송
	if err := conn.WriteMessage(websocket.TextMessage, []byte(coachGreeting)); err != nil {
		h.log.Warn("failed to send greeting", "user_id", user.ID, "error", err)
		return
	}

	h.manageTextSession(c.Request.Context(), conn, user.ID)
}
