package serverless

import (
	"github.com/sh5080/keyword-go/pkg/configs"
	"github.com/sh5080/keyword-go/pkg/utils"
)

// CloudRunMain은 컨테이너 환경(Cloud Run 등)에서 PORT로 서버를 실행합니다
func CloudRunMain() {
	port := configs.GetConfig().Server.Port
	if err := GetApp().Listen(":" + port); err != nil {
		utils.Fatal("serverless", "서버 실행 실패: %v", err)
	}
}
