package model

// All lists every persistence model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&ProfileModel{},
		&ProducerModel{},
		&CompanyModel{},
		&ProductModel{},
		&ReviewModel{},
		&CartModel{},
		&CheckoutSessionModel{},
		&OrderModel{},
		&OrderItemModel{},
		&CertificationModel{},
		&MessageModel{},
	}
}
