// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

// NewNode 按节点ID创建雪花ID生成器, 批次号等需要
// 全局唯一且趋势递增的编号都从这里拿
func NewNode(nodeID int64) (*snowflake.Node, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: node_id = %d", ErrExceedNode, nodeID)
	}
	return snowflake.NewNode(nodeID)
}
