package diag

// User-visible strings. Formats take the arguments noted alongside.
const (
	MsgEmptyQuery   = "Digite um termo para buscar"
	MsgLoading      = "Carregando..."
	MsgNoResults    = "Nenhuma carta encontrada ou erro na API."
	MsgSearchBusy   = "Uma busca já está em andamento"
	MsgEmptyDeck    = "Deck vazio"
	MsgDeckFull     = "Deck %s já atingiu o máximo de %d cartas" // deck label, cap
	MsgCopyLimit    = "Já existe o máximo de %d cópias desta carta no deck"
	MsgCopyLimitQty = "Já há %d cópias desta carta"
	MsgWouldExceed  = "Adicionar esta cópia excederia o limite do deck"
	MsgNoEntry      = "Carta não encontrada no deck"
	MsgBadQuantity  = "Quantidade inválida"
	MsgUnknownDeck  = "Deck desconhecido: %s"
	MsgConfirmBulk  = "Você está prestes a baixar %d imagens. Isso pode gerar muitas requisições. Deseja continuar?"
	MsgPartialFail  = "Algumas imagens falharam ao baixar: %d"
	MsgCancelled    = "Download cancelado"
	MsgDownloadBusy = "Um download já está em andamento"
	MsgImageFailed  = "Não foi possível baixar a imagem"
	MsgQRTooLarge   = "Deck grande demais para um QR code"
	MsgUnknownCard  = "Carta não encontrada nos resultados da busca"
)
