package service

import (
	redispkg "Emporium/internal/pkg/redis"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

var testRedis *miniredis.Miniredis

func TestMain(m *testing.M) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	testRedis = mr
	redispkg.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	code := m.Run()
	mr.Close()
	os.Exit(code)
}

// resetRedis 清空测试实例，避免推荐短缓存串到别的用例
func resetRedis(t *testing.T) {
	t.Helper()
	testRedis.FlushAll()
}
