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
	"github.com/ecodeclub/ekit/syncx"
)

// 业务编号，每个业务独占一组 snowflake 节点
const (
	BizPosting uint = iota
	bizCount
)

//go:generate mockgen -source=./snowflake.go -package=snowflakemocks -destination=./mocks/snowflake.mock.go IDGenerator
type IDGenerator interface {
	Generate(biz uint) (ID, error)
}

type Generator struct {
	// 键为 biz
	nodes syncx.Map[uint, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("biz超出限制")
	ErrUnknownBiz = errors.New("未知的biz")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz  | 5 Bit NodeID  |   12 Bit Sequence ID   |
// +---------------------------------------------------------------------------------------+

// NewGenerator nodeId 表示第几个实例，bizs 表示一共有几个业务，从 0 开始编号
func NewGenerator(nodeId uint, bizs uint) (*Generator, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeId)
	}
	if bizs > maxBiz+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedBiz, bizs)
	}
	g := &Generator{}
	for i := uint(0); i < bizs; i++ {
		nid := (i << 5) | nodeId
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(i, n)
	}
	return g, nil
}

// NewDefaultGenerator 注册目前所有业务
func NewDefaultGenerator(nodeId uint) (*Generator, error) {
	return NewGenerator(nodeId, bizCount)
}

type ID int64

func (g *Generator) Generate(biz uint) (ID, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

func (f ID) Biz() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
