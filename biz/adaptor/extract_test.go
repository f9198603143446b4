package adaptor

import (
	"context"
	"testing"

	"techbuddies/biz/application/dto/basic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 无 hertz 上下文或无 token 时返回空 meta, 上层只记录不校验
func TestExtractUserMetaWithoutContext(t *testing.T) {
	meta := ExtractUserMeta(context.Background())
	require.NotNil(t, meta)
	assert.Empty(t, meta.GetUserId())
}

func TestGetUserIdNilReceiver(t *testing.T) {
	var meta *basic.UserMeta
	assert.Empty(t, meta.GetUserId())
}
