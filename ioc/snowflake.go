package ioc

import (
	"github.com/bwmarrin/snowflake"
	sf "github.com/ecodeclub/eshop/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

func InitSnowflakeNode() *snowflake.Node {
	nodeID := econf.GetInt64("snowflake.nodeID")
	node, err := sf.NewNode(nodeID)
	if err != nil {
		panic(err)
	}
	return node
}
