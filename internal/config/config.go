package config

import (
	"flag"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	HMACSecret    string `mapstructure:"hmacSecret"`
	AdminToken    string `mapstructure:"adminToken"`
	InternalToken string `mapstructure:"internalToken"`
}
type DepositCfg struct {
	ExpiryMinutes       int `mapstructure:"expiryMinutes"`
	AuditShardsPerMonth int `mapstructure:"auditShardsPerMonth"`
}
type NotifyCfg struct {
	UserHookURL    string `mapstructure:"userHookUrl"`
	TelegramChatID string `mapstructure:"telegramChatId"`
}

type Root struct {
	Server   ServerCfg   `mapstructure:"server"`
	Mysql    MysqlCfg    `mapstructure:"mysql"`
	RabbitMQ RabbitCfg   `mapstructure:"rabbitmq"`
	Redis    RedisCfg    `mapstructure:"redis"`
	Security SecurityCfg `mapstructure:"security"`
	Deposit  DepositCfg  `mapstructure:"deposit"`
	Notify   NotifyCfg   `mapstructure:"notify"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.Deposit.ExpiryMinutes <= 0 {
		C.Deposit.ExpiryMinutes = 30
	}
	if C.Deposit.AuditShardsPerMonth <= 0 {
		C.Deposit.AuditShardsPerMonth = 4
	}
}
