package transcription

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	v1 "knscribe-service/api/transcription/v1"
	"knscribe-service/internal/consts"
)

func (c *ControllerV1) DeleteHistory(ctx context.Context, req *v1.DeleteHistoryReq) (res *v1.DeleteHistoryRes, err error) {
	ownerID := g.RequestFromCtx(ctx).GetCtxVar(consts.CtxUserID).Int64()
	if err := c.store.DeleteForOwner(ctx, ownerID, req.Id); err != nil {
		return nil, err
	}
	return &v1.DeleteHistoryRes{}, nil
}
