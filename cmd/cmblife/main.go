package main

import (
	"context"
	"fmt"
	"os"

	"cmblife-sdk/infrastructure/service/cmblife_service"
	"cmblife-sdk/utils/configs"
	"cmblife-sdk/utils/helpers"
	logger2 "cmblife-sdk/utils/logger"

	"github.com/leekchan/accounting"
	"github.com/spf13/cast"
)

const usage = `usage:
  cmblife approval [state] [callback]
  cmblife token <code>
  cmblife treasure <openId> <amount>
  cmblife query <openId> <refToken>`

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger(config.ENV)

	client, err := cmblife_service.NewClient(cmblife_service.Config{
		MerchantID:     config.MerchantID,
		AppID:          config.AppID,
		PrivateKeyPath: config.PrivateKeyPath,
		PublicKeyPath:  config.PublicKeyPath,
		ClientType:     config.ClientType,
		Host:           config.Host,
	}, lg)
	if err != nil {
		panic(err)
	}

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	ctx := context.Background()
	yuan := accounting.Accounting{Symbol: "¥", Precision: 2}

	switch os.Args[1] {
	case "approval":
		state := helpers.GetUUId()
		callback := ""
		if len(os.Args) > 2 {
			state = os.Args[2]
		}
		if len(os.Args) > 3 {
			callback = os.Args[3]
		}
		link, err := client.ApprovalLink(state, callback)
		if err != nil {
			panic(err)
		}
		fmt.Println(link)

	case "token":
		if len(os.Args) < 3 {
			fmt.Println(usage)
			os.Exit(2)
		}
		response, err := client.AccessToken(ctx, os.Args[2])
		if err != nil {
			panic(err)
		}
		fmt.Printf("respCode=%s respMsg=%s\n", response.RespCode(), response.RespMsg())
		fmt.Printf("accessToken=%s openId=%s expiresIn=%d verified=%v\n",
			response.AccessToken(), response.OpenID(), response.ExpiresIn(),
			client.VerifyResponse(response.Response))

	case "treasure":
		if len(os.Args) < 4 {
			fmt.Println(usage)
			os.Exit(2)
		}
		amount := cast.ToInt64(os.Args[3])
		response, err := client.IncreaseTreasure(ctx, os.Args[2], amount)
		if err != nil {
			panic(err)
		}
		// amounts are in fen
		fmt.Printf("respCode=%s respMsg=%s credited=%s refToken=%s verified=%v\n",
			response.RespCode(), response.RespMsg(),
			yuan.FormatMoney(float64(amount)/100), response.RefToken(),
			client.VerifyResponse(response.Response))

	case "query":
		if len(os.Args) < 4 {
			fmt.Println(usage)
			os.Exit(2)
		}
		response, err := client.QueryIncreaseTreasure(ctx, os.Args[2], os.Args[3])
		if err != nil {
			panic(err)
		}
		fmt.Printf("respCode=%s respMsg=%s amount=%s verified=%v\n",
			response.RespCode(), response.RespMsg(), response.Amount(),
			client.VerifyResponse(response.Response))

	default:
		fmt.Println(usage)
		os.Exit(2)
	}
}
