package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health 健康检查：探一次数据库连接
// @Summary 健康检查
// @Tags 系统
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(503, gin.H{"status": "database connection failed"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	}
}
