package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
)

// pathID :id 파라미터. 실패하면 응답까지 쓰고 false
func pathID(c *gin.Context, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ParamError(c, message)
		return 0, false
	}
	return id, true
}

// openUpload 업로드 파일을 서비스 입력으로 변환. 호출한 쪽에서 Close
func openUpload(fh *multipart.FileHeader) (*dto.UploadFile, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &dto.UploadFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, f, nil
}

type closers []io.Closer

func (cs closers) Close() {
	for _, c := range cs {
		c.Close()
	}
}
