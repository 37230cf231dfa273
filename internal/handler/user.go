package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/user/curio/internal/middleware"
	"github.com/user/curio/internal/utils"
	"github.com/user/curio/internal/validation"
)

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp 注册用户
func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	// 逐项校验，聚合返回
	var errs []string
	for _, msg := range []string{
		validation.Username(req.Username),
		validation.Email(req.Email),
		validation.Password(req.Password),
	} {
		if msg != "" {
			errs = append(errs, msg)
		}
	}
	if len(errs) > 0 {
		c.JSON(400, gin.H{"errors": errs})
		return
	}

	// 邮箱唯一性需要一次存储往返
	existing, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "Failed to create new user.")
		return
	}
	if existing != nil {
		utils.BadRequest(c, "Email already exists.")
		return
	}

	user, err := h.Repos.User.Create(req.Username, req.Email, req.Password)
	if err != nil {
		log.Printf("[User] 创建用户失败: %v", err)
		utils.InternalServerError(c, "Failed to create new user.")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		log.Printf("[User] 生成 Token 失败: %v", err)
	}

	utils.Created(c, gin.H{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login 登录，签发 Bearer Token
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body.")
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, "Failed to log in.")
		return
	}
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "Invalid email or password.")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, "Failed to log in.")
		return
	}

	utils.OK(c, gin.H{"token": token, "user": user})
}

// SearchHistory 查询用户的标签搜索历史。
// userId 可以由查询参数给出，也可以由 Bearer Token 推导。
func (h *Handler) SearchHistory(c *gin.Context) {
	userIDParam := c.Query("userId")
	userID := middleware.GetUserID(c)

	if userIDParam != "" {
		parsed, msg := validation.ParseUserID(userIDParam)
		if msg != "" {
			utils.BadRequest(c, msg)
			return
		}
		userID = parsed
	}
	if userID == 0 {
		utils.BadRequest(c, "User ID is required.")
		return
	}

	entries, err := h.Repos.SearchHistory.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to retrieve search history.")
		return
	}
	if len(entries) == 0 {
		utils.NotFound(c, "Search history not found.")
		return
	}

	utils.OK(c, gin.H{"searchHistory": entries})
}
