package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

// SessionID sinh id phiên đăng nhập cho claim JWT
func SessionID() string {
	return node.Generate().String()
}
