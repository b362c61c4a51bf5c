package service

import "errors"

// Business-rule errors. Handlers map these to HTTP status codes in one
// place (handler.respondErro) instead of string-matching messages.
var (
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrCodigoDuplicado      = errors.New("já existe um produto com este código")
	ErrEstoqueInsuficiente  = errors.New("quantidade vendida maior que a disponível em estoque")
	ErrQuantidadeInvalida   = errors.New("quantidade inválida")

	ErrVendaNaoEncontrada = errors.New("venda não encontrada")

	ErrEmailJaRegistrado    = errors.New("e-mail já registrado")
	ErrSenhasNaoCoincidem   = errors.New("as senhas não coincidem")
	ErrCredenciaisInvalidas = errors.New("e-mail ou senha inválidos")

	ErrFechamentoNaoConfirmado = errors.New("fechamento de caixa requer confirmação explícita")
)
