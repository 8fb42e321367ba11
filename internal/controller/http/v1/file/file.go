package file

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Controller serves stored evidence files from the media directory.
type Controller struct {
	mediaBasePath string
}

func NewController(mediaBasePath string) *Controller {
	return &Controller{mediaBasePath: mediaBasePath}
}

func (cf Controller) File(c *gin.Context) {
	fs := gin.Dir(cf.mediaBasePath, false)

	file := c.Param("filepath")
	f, err := fs.Open(file)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]any{
			"message": "file tidak ditemukan",
			"status":  false,
		})
		return
	}
	f.Close()

	http.ServeFile(c.Writer, c.Request, filepath.Join(cf.mediaBasePath, filepath.FromSlash(file)))
}
