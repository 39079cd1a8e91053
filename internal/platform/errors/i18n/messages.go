package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeAssetHashEmpty         = "ASSET_HASH_EMPTY"
	CodeAssetNewOwnerEmpty     = "ASSET_NEW_OWNER_EMPTY"
	CodeAssetAlreadyRegistered = "ASSET_ALREADY_REGISTERED"
	CodeAssetNotFound          = "ASSET_NOT_FOUND"
	CodeAssetNotOwner          = "ASSET_NOT_OWNER"
	CodeAssetIndexOutOfRange   = "ASSET_INDEX_OUT_OF_RANGE"
	CodeCallerMissing          = "CALLER_MISSING"
	CodeCallerTokenInvalid     = "CALLER_TOKEN_INVALID"
	CodePageTokenInvalid       = "PAGE_TOKEN_INVALID"
)

var enUSCatalog = &Catalog{
	locale: BaseLocale,
	messages: map[Code]string{
		CodeAssetHashEmpty:         "Asset hash cannot be empty",
		CodeAssetNewOwnerEmpty:     "New owner cannot be empty",
		CodeAssetAlreadyRegistered: "Asset {{.AssetHash}} is already registered",
		CodeAssetNotFound:          "Asset {{.AssetHash}} is not registered",
		CodeAssetNotOwner:          "Only the current owner can transfer asset {{.AssetHash}}",
		CodeAssetIndexOutOfRange:   "Index {{.Index}} is out of range (asset count is {{.Count}})",
		CodeCallerMissing:          "This operation requires an authenticated caller",
		CodeCallerTokenInvalid:     "The caller token is invalid or expired",
		CodePageTokenInvalid:       "The page token is invalid",
	},
}

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeAssetHashEmpty:         "O hash do ativo não pode ser vazio",
		CodeAssetNewOwnerEmpty:     "O novo proprietário não pode ser vazio",
		CodeAssetAlreadyRegistered: "O ativo {{.AssetHash}} já está registrado",
		CodeAssetNotFound:          "O ativo {{.AssetHash}} não está registrado",
		CodeAssetNotOwner:          "Somente o proprietário atual pode transferir o ativo {{.AssetHash}}",
		CodeAssetIndexOutOfRange:   "O índice {{.Index}} está fora do intervalo (total de ativos: {{.Count}})",
		CodeCallerMissing:          "Esta operação exige um chamador autenticado",
		CodeCallerTokenInvalid:     "O token do chamador é inválido ou expirou",
		CodePageTokenInvalid:       "O token de página é inválido",
	},
}
