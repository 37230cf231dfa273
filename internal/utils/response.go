package utils

import (
	"github.com/gin-gonic/gin"
)

// API 统一的错误负载形态为 {"error": "..."}，
// 成功负载由各 handler 自行给出。

// OK 返回 200
func OK(c *gin.Context, data gin.H) {
	c.JSON(200, data)
}

// Created 返回 201
func Created(c *gin.Context, data gin.H) {
	c.JSON(201, data)
}

// Error 返回错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// ErrorWithDetail 返回错误响应并附带细节（仅非生产环境）
func ErrorWithDetail(c *gin.Context, code int, message, detail string, production bool) {
	if production || detail == "" {
		Error(c, code, message)
		return
	}
	c.JSON(code, gin.H{"error": message, "details": detail})
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized 返回 401 错误
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized."
	}
	Error(c, 401, message)
}

// NotFound 返回 404 错误
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found."
	}
	Error(c, 404, message)
}

// Conflict 返回 409 错误
func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

// InternalServerError 返回 500 错误
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error."
	}
	Error(c, 500, message)
}
