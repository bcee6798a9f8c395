package request

import (
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/domains/services/svauth"
)

// ToFilterState 将 query 参数转换为过滤条件
func (r *ListFilterRequest) ToFilterState() filter.State {
	return filter.State{
		SearchTerm: r.Search,
		Status:     r.Status,
	}
}

// ToRegisterInput 将注册请求转换为服务层入参
func (r *RegisterRequest) ToRegisterInput() *svauth.RegisterInput {
	return &svauth.RegisterInput{
		Role:            r.Role,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// ApplyToVendor 将资料更新请求合并到领域对象
func (r *UpdateProfileRequest) ApplyToVendor(v *etvendor.Vendor) {
	v.Name = r.Name
	v.BusinessName = r.BusinessName
	v.Email = r.Email
	v.Phone = r.Phone
}
