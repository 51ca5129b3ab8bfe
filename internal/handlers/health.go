package handlers

import (
	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"}, "")
}
