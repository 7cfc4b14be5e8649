package main

import (
	"os"

	"github.com/sh5080/keyword-go/pkg/serverless"
)

func main() {
	// Lambda 런타임이면 API Gateway 프록시, 아니면 일반 컨테이너로 실행
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		serverless.LambdaMain()
		return
	}
	serverless.CloudRunMain()
}
