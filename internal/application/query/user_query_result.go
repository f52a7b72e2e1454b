package query

import "auth-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}
